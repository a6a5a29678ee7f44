package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mhersch/graphio/pkg/render"
)

func TestRunRenderMissingInput(t *testing.T) {
	c := &CLI{Logger: log.Default(), Config: DefaultConfig()}
	ctx := withLogger(context.Background(), c.Logger)

	opts := renderOpts{format: render.FormatSVG, noCache: true}
	if err := c.runRender(ctx, filepath.Join(t.TempDir(), "nope.xml"), opts); err == nil {
		t.Error("runRender() should fail for a missing input file")
	}
}

func TestRunRenderMalformedInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.xml")
	if err := os.WriteFile(input, []byte("<graph><node"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := &CLI{Logger: log.Default(), Config: DefaultConfig()}
	ctx := withLogger(context.Background(), c.Logger)

	opts := renderOpts{format: render.FormatPNG, noCache: true}
	if err := c.runRender(ctx, input, opts); err == nil {
		t.Error("runRender() should fail on malformed markup")
	}
}

func TestArtifactTTL(t *testing.T) {
	c := &CLI{Config: DefaultConfig()}
	if got := c.artifactTTL(); got != 0 {
		t.Errorf("artifactTTL() = %v, want 0 when unconfigured", got)
	}

	c.Config.Cache.TTLHours = 6
	if got := c.artifactTTL(); got != 6*time.Hour {
		t.Errorf("artifactTTL() = %v, want 6h", got)
	}
}
