package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/odpi/mermaidgraph/pkg/render/mermaid/builder"
)

// kindsCommand lists the registered diagram kinds.
func (c *CLI) kindsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the diagram kinds and the aggregates they read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := builder.Kinds()
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(lo.Map(kinds, func(k builder.Kind, _ int) map[string]string {
					return map[string]string{"name": k.Name, "aggregate": k.Aggregate, "description": k.Description}
				}))
			}
			fmt.Println(kindTable(kinds, -1).Render())
			printNextStep("Render one", "mermaidgraph render <file> --kind "+kinds[0].Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}
