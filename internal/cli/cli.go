package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/odpi/mermaidgraph/pkg/buildinfo"
	"github.com/odpi/mermaidgraph/pkg/cache"
	"github.com/odpi/mermaidgraph/pkg/catalog"
	"github.com/odpi/mermaidgraph/pkg/config"
	"github.com/odpi/mermaidgraph/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = config.AppName

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded before any subcommand runs.
	Config *config.Config

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Mermaid diagrams for metadata catalog aggregates",
		Long: `mermaidgraph draws metadata catalog aggregates (element neighbourhoods, lineage,
glossaries, projects, solution blueprints, supply chains and data structures)
as Mermaid flowcharts, with Graphviz previews.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.kindsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file and applies its [log] section.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	applyLogConfig(c.Logger, cfg.Log, c.verbose)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger.WithPrefix(cmd.Name())))
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner on the configured cache backend.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	store, err := c.openCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if scope := c.Config.Cache.Scope; scope != "" {
		keyer = cache.NewScopedKeyer(nil, scope)
	}
	runner := pipeline.NewRunner(store, keyer, c.Logger)
	runner.DiagramTTL = c.Config.Cache.TTL
	return runner, nil
}

func (c *CLI) openCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	store, err := cache.Open(ctx, c.Config.Cache.Config)
	if err != nil {
		if c.Config.Cache.Backend == cache.BackendFile {
			c.Logger.Warn("file cache unavailable, caching disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		return nil, err
	}
	c.Logger.Debug("opened cache", "backend", c.Config.Cache.Backend)
	return store, nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// renderFlags are the build flags shared by render and watch. Unset flags
// fall back to the [render] section of the config file.
type renderFlags struct {
	kind      string
	formats   string
	direction string
	anchors   string
	include   []string
	exclude   []string
	detailed  bool
	scale     float64
	noCache   bool
	refresh   bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.kind, "kind", "k", "", "diagram kind (see 'mermaidgraph kinds'); defaults to the document's kind")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): mmd (default), md, dot, svg, png, pdf (comma-separated)")
	cmd.Flags().StringVarP(&f.direction, "direction", "d", "", "flowchart direction: TD, LR or RL (default per kind)")
	cmd.Flags().StringVar(&f.anchors, "anchors", "", "anchor links: none, existing or all (default per kind)")
	cmd.Flags().StringArrayVar(&f.include, "include", nil, "only draw relationship types matching these globs (repeatable or comma-separated; braces keep {A,B} whole)")
	cmd.Flags().StringArrayVar(&f.exclude, "exclude", nil, "never draw relationship types matching these globs (repeatable or comma-separated)")
	cmd.Flags().BoolVar(&f.detailed, "detailed", false, "show summary properties in Graphviz previews")
	cmd.Flags().Float64Var(&f.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached results (still stores new ones)")

	_ = cmd.RegisterFlagCompletionFunc("kind", completeKinds)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(pipeline.FormatNames, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("direction", cobra.FixedCompletions([]string{"TD", "LR", "RL"}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("anchors", cobra.FixedCompletions([]string{"none", "existing", "all"}, cobra.ShellCompDirectiveNoFileComp))
}

// options merges the flags over the config file's render defaults.
func (f *renderFlags) options(cmd *cobra.Command, def config.Render) pipeline.Options {
	opts := pipeline.Options{
		Kind:      f.kind,
		Direction: def.Direction,
		Anchors:   def.Anchors,
		Include:   def.Include,
		Exclude:   def.Exclude,
		Formats:   def.Formats,
		Detailed:  def.Detailed,
		Scale:     f.scale,
		Refresh:   f.refresh,
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		opts.Formats = pipeline.ParseFormats(f.formats)
	}
	if flags.Changed("direction") {
		opts.Direction = f.direction
	}
	if flags.Changed("anchors") {
		opts.Anchors = f.anchors
	}
	if flags.Changed("include") {
		opts.Include = catalog.SplitPatterns(f.include...)
	}
	if flags.Changed("exclude") {
		opts.Exclude = catalog.SplitPatterns(f.exclude...)
	}
	if flags.Changed("detailed") {
		opts.Detailed = f.detailed
	}
	return opts
}

// isTerminal reports whether f is an interactive terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
