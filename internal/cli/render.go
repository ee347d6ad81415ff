package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/odpi/mermaidgraph/pkg/catalog"
	"github.com/odpi/mermaidgraph/pkg/errors"
	"github.com/odpi/mermaidgraph/pkg/pipeline"
)

// stdio is the path that means stdin for input and stdout for output.
const stdio = "-"

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags       renderFlags
		output      string
		inputFormat string
	)

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render an aggregate document as a Mermaid diagram",
		Long: `Render an aggregate document as a Mermaid diagram.

The input is a JSON or YAML file holding either a bare aggregate (pass
--kind) or an envelope {"kind": "...", "aggregate": {...}}. Use - to read
stdin. When no kind is known and stdin is a terminal, a picker is shown.

Outputs are written next to the input (orders.json → orders.mmd) unless
--output is given. With a single format, --output - writes to stdout.

Results are cached; see 'mermaidgraph cache'.`,
		Example: `  mermaidgraph render orders.json --kind element
  mermaidgraph render lineage.yaml -f mmd,svg -d TD
  catalog-export | mermaidgraph render - -k glossary -o -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.options(cmd, c.Config.Render)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, inputFormat, flags.noCache, true)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format), base path (multiple), or - for stdout")
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "input syntax: json or yaml (default from extension)")

	return cmd
}

// runRender reads the document, runs the pipeline and writes the artifacts.
// When interactive is set and no kind is known, the user is asked for one.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output, inputFormat string, noCache, interactive bool) error {
	doc, err := readDocument(input, inputFormat)
	if err != nil {
		return err
	}
	if interactive && opts.Kind == "" && doc.Kind == "" && input != stdio && isTerminal(os.Stdin) {
		if opts.Kind, err = pickKind(); err != nil {
			return err
		}
	}
	if err := opts.UseDocument(doc); err != nil {
		return err
	}

	opts.Logger = c.Logger
	opts.SetExportDefaults()
	paths, err := outputPaths(opts.Formats, input, output)
	if err != nil {
		return err
	}
	toStdout := paths[opts.Formats[0]] == stdio

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx), opts.Kind)

	spinner := newSpinner(ctx, os.Stderr, fmt.Sprintf("Rendering %s diagram...", opts.Kind))
	if isTerminal(os.Stderr) {
		spinner.Start()
	}
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return fmt.Errorf("render %s: %w", input, err)
	}
	spinner.Stop()

	if result.Empty {
		if toStdout {
			prog.empty()
			return nil
		}
		printWarning("Nothing to draw: the %s aggregate has no related elements", opts.Kind)
		return nil
	}

	if err := writeArtifacts(result.Artifacts, opts.Formats, paths); err != nil {
		return err
	}
	if !toStdout {
		printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.DiagramHit)
	}
	prog.done(result)
	return nil
}

// readDocument reads an aggregate document from a file or stdin.
func readDocument(input, format string) (catalog.Document, error) {
	if input == stdio {
		if format == "" {
			format = catalog.FormatJSON
		}
		return catalog.ReadDocument(os.Stdin, format)
	}
	if format == "" {
		return catalog.ReadDocumentFile(input)
	}
	f, err := os.Open(input)
	if err != nil {
		return catalog.Document{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "aggregate file %s", input)
	}
	defer f.Close()
	return catalog.ReadDocument(f, format)
}

// outputPaths maps each format to its destination. An output of "-" means
// stdout and allows one format only. Otherwise a single format goes to output
// as given, and several formats share output (or the input name) as a base
// path with the format as extension.
func outputPaths(formats []string, input, output string) (map[string]string, error) {
	paths := make(map[string]string, len(formats))

	if output == stdio || (output == "" && input == stdio) {
		if len(formats) != 1 {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"stdout takes a single format, got %s (use --output)", strings.Join(formats, ","))
		}
		paths[formats[0]] = stdio
		return paths, nil
	}

	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths, nil
	}

	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths, nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.mmd, .svg, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifacts writes each artifact to its path in format order.
func writeArtifacts(artifacts map[string][]byte, formats []string, paths map[string]string) error {
	for _, format := range formats {
		path := paths[format]
		out, err := openOutput(path)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
		}
		_, err = out.Write(artifacts[format])
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		if path != stdio {
			printFile(path)
		}
	}
	return nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is "-", it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == stdio {
		return nopCloser{os.Stdout}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}
