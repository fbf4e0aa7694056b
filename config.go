package backdrop

import (
	"github.com/tanema/gween/ease"
)

// Default window layout.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "backdrop"

	// panelHeight is the strip below the viewport holding the slider and HUD.
	panelHeight = 56
)

// RunConfig configures an App and the window Run opens for it. Zero fields
// take defaults.
type RunConfig struct {
	Title string
	// Width and Height are the viewport size. The window is taller by the
	// control panel.
	Width, Height int
	ClearColor    Color
	ShowFPS       bool

	// ExportDir is where the S key writes PNG exports.
	ExportDir string

	MinZoom  float64
	MaxZoom  float64
	ZoomEase ease.TweenFunc

	// Overlay is drawn over the background, fixed in viewport space.
	Overlay *Overlay
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.ClearColor == (Color{}) {
		c.ClearColor = Color{R: 0.118, G: 0.118, B: 0.157, A: 1}
	}
	if c.ExportDir == "" {
		c.ExportDir = DefaultExportDir
	}
	if c.MinZoom < MinZoomFactor {
		c.MinZoom = DefaultMinZoom
	}
	if c.MaxZoom <= 0 {
		c.MaxZoom = DefaultMaxZoom
	}
	if c.ZoomEase == nil {
		c.ZoomEase = ease.Linear
	}
	return c
}

// viewport returns the configured viewport size.
func (c RunConfig) viewport() Size {
	return Size{float64(c.Width), float64(c.Height)}
}
