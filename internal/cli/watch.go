package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/odpi/mermaidgraph/pkg/pipeline"
	"github.com/odpi/mermaidgraph/pkg/watch"
)

// watchCommand creates the watch command, which re-renders aggregate files
// whenever they change.
func (c *CLI) watchCommand() *cobra.Command {
	var (
		flags    renderFlags
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch file...",
		Short: "Re-render aggregate documents when they change",
		Long: `Re-render aggregate documents when they change.

Each file is rendered once at startup and again after every save, with
outputs written next to it (orders.json → orders.mmd). Bursts of writes are
folded into one render. Stop with Ctrl-C.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.options(cmd, c.Config.Render)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if !cmd.Flags().Changed("debounce") {
				debounce = c.Config.Watch.Debounce
			}
			return c.runWatch(cmd.Context(), args, opts, debounce, flags.noCache)
		},
	}

	flags.register(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", 300*time.Millisecond, "quiet period before re-rendering")

	return cmd
}

func (c *CLI) runWatch(ctx context.Context, files []string, opts pipeline.Options, debounce time.Duration, noCache bool) error {
	logger := loggerFromContext(ctx)
	events, err := watch.Watch(ctx, files, debounce, logger)
	if err != nil {
		return err
	}

	render := func(path string) {
		if err := c.runRender(ctx, path, opts, "", "", noCache, false); err != nil {
			printError("%v", err)
		}
	}

	for _, f := range files {
		render(f)
	}
	printInfo("Watching %d file(s); press Ctrl-C to stop", len(files))

	for ev := range events {
		logger.Debug("change batch", "files", len(ev.Paths), "at", ev.Time.Format(time.TimeOnly))
		for _, path := range ev.Paths {
			printInfo("%s changed", path)
			render(path)
		}
	}
	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch: %w", err)
	}
	return nil
}
