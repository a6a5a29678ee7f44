package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mhersch/graphio/pkg/cache"
	"github.com/mhersch/graphio/pkg/codec"
	"github.com/mhersch/graphio/pkg/observability"
	"github.com/mhersch/graphio/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path ("" derives from input)
	format  string // raster format: "svg" or "png"
	labeled bool   // annotate connectors with weight labels
	noCache bool   // bypass the artifact cache
}

// renderCommand creates the render command for rasterizing graphs.
//
// Default settings:
//   - format: svg
//   - output: input file name with the format extension
//   - caching: enabled, keyed by DOT source hash
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render an XML graph document as an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := render.ValidateFormat(opts.format); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", render.FormatSVG, "output format: svg, png")
	cmd.Flags().BoolVar(&opts.labeled, "labeled", false, "annotate connectors with weight labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}

// runRender loads the graph, serializes it to DOT, and rasterizes the result,
// consulting the artifact cache keyed by the DOT source hash.
func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	g, err := loadGraph(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded graph", "file", input, "nodes", g.NodeCount(), "arrows", g.ArrowCount())

	to := codec.FormatDOT
	if opts.labeled {
		to = codec.FormatDOTWeighted
	}
	dot, err := codec.Write(g, to)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", input, err)
	}

	store := c.newCache(ctx, opts.noCache)
	defer store.Close()

	keyer := cache.DefaultKeyer{}
	key := keyer.ArtifactKey(cache.Hash([]byte(dot)), opts.format)

	cached := false
	data, ok, cacheErr := store.Get(ctx, key)
	if cacheErr != nil {
		logger.Warn("cache read failed", "key", key, "error", cacheErr)
	}
	if ok {
		cached = true
		observability.Cache().OnHit(ctx, "artifact")
		printSuccess("Rendered %s", input)
	} else {
		observability.Cache().OnMiss(ctx, "artifact")

		sp := newSpinner(ctx, fmt.Sprintf("Rendering %s", opts.format))
		sp.Start()

		start := time.Now()
		data, err = render.Render(ctx, dot, opts.format)
		observability.Render().OnRenderComplete(ctx, opts.format, len(data), time.Since(start), err)
		if err != nil {
			sp.StopWithError(fmt.Sprintf("Render failed: %v", err))
			return err
		}
		sp.StopWithSuccess(fmt.Sprintf("Rendered %s", input))

		if err := store.Set(ctx, key, data, c.artifactTTL()); err != nil {
			printWarning("Artifact cache write failed: %v", err)
		} else {
			observability.Cache().OnSet(ctx, "artifact", len(data))
		}
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	printFile(outputPath)
	printStats(g.NodeCount(), g.ArrowCount())
	printCacheStatus(cached)
	prog.done(fmt.Sprintf("wrote %s", outputPath))
	return nil
}

// artifactTTL returns the configured artifact lifetime, or zero for no expiry.
func (c *CLI) artifactTTL() time.Duration {
	if c.Config.Cache.TTLHours <= 0 {
		return 0
	}
	return time.Duration(c.Config.Cache.TTLHours) * time.Hour
}
