package backdrop

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestRunConfigDefaults(t *testing.T) {
	c := RunConfig{}.withDefaults()
	if c.Title != DefaultTitle {
		t.Errorf("Title = %q, want %q", c.Title, DefaultTitle)
	}
	if c.Width != DefaultWidth || c.Height != DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", c.Width, c.Height, DefaultWidth, DefaultHeight)
	}
	if c.ExportDir != DefaultExportDir {
		t.Errorf("ExportDir = %q, want %q", c.ExportDir, DefaultExportDir)
	}
	if c.MinZoom != DefaultMinZoom || c.MaxZoom != DefaultMaxZoom {
		t.Errorf("zoom range = [%v, %v], want [%v, %v]", c.MinZoom, c.MaxZoom, DefaultMinZoom, DefaultMaxZoom)
	}
	if c.ZoomEase == nil {
		t.Error("ZoomEase = nil")
	}
	if c.ClearColor.A != 1 {
		t.Errorf("ClearColor.A = %v, want 1", c.ClearColor.A)
	}
	if got := c.viewport(); got != (Size{DefaultWidth, DefaultHeight}) {
		t.Errorf("viewport = %v", got)
	}
}

func TestRunConfigKeepsExplicitValues(t *testing.T) {
	in := RunConfig{
		Title:     "t",
		Width:     320,
		Height:    200,
		ExportDir: "out",
		MinZoom:   1.5,
		MaxZoom:   8,
		ZoomEase:  ease.InQuad,
	}
	c := in.withDefaults()
	if c.Title != "t" || c.Width != 320 || c.Height != 200 || c.ExportDir != "out" {
		t.Errorf("explicit fields overwritten: %+v", c)
	}
	if c.MinZoom != 1.5 || c.MaxZoom != 8 {
		t.Errorf("zoom range = [%v, %v], want [1.5, 8]", c.MinZoom, c.MaxZoom)
	}
}

func TestRunConfigRaisesMinZoom(t *testing.T) {
	c := RunConfig{MinZoom: 0.5}.withDefaults()
	if c.MinZoom != MinZoomFactor {
		t.Errorf("MinZoom = %v, want %v", c.MinZoom, MinZoomFactor)
	}
}
