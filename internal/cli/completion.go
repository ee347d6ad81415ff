package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/odpi/mermaidgraph/pkg/render/mermaid/builder"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for mermaidgraph.

To load completions:

Bash:
  $ source <(mermaidgraph completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ mermaidgraph completion bash > /etc/bash_completion.d/mermaidgraph
  # macOS:
  $ mermaidgraph completion bash > $(brew --prefix)/etc/bash_completion.d/mermaidgraph

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ mermaidgraph completion zsh > "${fpath[1]}/_mermaidgraph"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ mermaidgraph completion fish | source

  # To load completions for each session, execute once:
  $ mermaidgraph completion fish > ~/.config/fish/completions/mermaidgraph.fish

PowerShell:
  PS> mermaidgraph completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> mermaidgraph completion powershell > mermaidgraph.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}

// completeKinds completes --kind with the registered kinds and their
// descriptions.
func completeKinds(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	kinds := builder.Kinds()
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = k.Name + "\t" + k.Description
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
