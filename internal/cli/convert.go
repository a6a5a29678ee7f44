package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mhersch/graphio/pkg/codec"
	"github.com/mhersch/graphio/pkg/graph"
	"github.com/mhersch/graphio/pkg/observability"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	to     string // target format identifier
	output string // output file path ("" means stdout)
}

// convertCommand creates the convert command.
//
// Defaults:
//   - target format: --to, else the interactive picker on a terminal,
//     else the configured default (dot)
//   - output: stdout
func (c *CLI) convertCommand() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Rewrite an XML graph document in another format",
		Long: `Rewrite an XML graph document in another format.

The input file must be in the XML markup format (the only readable
format). The target format is one of:

  xml       round-trippable XML markup (default input/output format)
  dot       Graphviz DOT, graph/digraph dialect detected automatically
  dotwt     DOT with weight labels on every connector
  dothyper  DOT hypergraph rendering (requires hyperedge data)

DOT output is write-only: it cannot be converted back.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.to, "to", "t", "", "target format: xml, dot, dotwt, dothyper")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// runConvert loads the graph, serializes it, and writes the result.
func (c *CLI) runConvert(cmd *cobra.Command, input string, opts convertOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	to, err := c.resolveTarget(opts.to)
	if err != nil {
		return err
	}

	g, err := loadGraph(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded graph", "file", input, "nodes", g.NodeCount(), "arrows", g.ArrowCount())

	start := time.Now()
	out, err := codec.Write(g, to)
	observability.Codec().OnWriteComplete(cmd.Context(), string(to), len(out), time.Since(start), err)
	if err != nil {
		return fmt.Errorf("convert to %s: %w", to, err)
	}
	prog.done(fmt.Sprintf("converted %s to %s", input, to))

	if opts.output == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(opts.output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}

	printSuccess("Converted %s to %s", input, to)
	printFile(opts.output)
	printStats(g.NodeCount(), g.ArrowCount())
	return nil
}

// resolveTarget picks the target format: explicit flag wins, otherwise the
// interactive picker runs, falling back to the configured default when the
// picker is dismissed without a selection.
func (c *CLI) resolveTarget(flag string) (codec.Format, error) {
	if flag != "" {
		f := codec.Format(flag)
		if !f.Writable() {
			return "", fmt.Errorf("unknown target format %q (valid: xml, dot, dotwt, dothyper)", flag)
		}
		return f, nil
	}

	if f, ok, err := pickFormat(); err == nil && ok {
		return f, nil
	}

	f := codec.Format(c.Config.Convert.Format)
	if !f.Writable() {
		return "", fmt.Errorf("configured default format %q is not valid", c.Config.Convert.Format)
	}
	return f, nil
}

// loadGraph reads an XML markup file into a fresh in-memory graph.
func loadGraph(path string) (*graph.Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	g := graph.NewMemory()
	if err := codec.Read(g, data, codec.FormatXML); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return g, nil
}
