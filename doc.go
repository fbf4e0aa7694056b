// Package backdrop keeps a background image panned and zoomed inside a fixed
// viewport for [Ebitengine], without ever exposing space outside the image.
//
// The image is first scaled to cover the viewport. From there it can be
// dragged and zoomed in, and every committed offset is clamped so the
// viewport stays fully covered.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window with the
// image, a zoom slider and a status line:
//
//	app := backdrop.NewApp(backdrop.RunConfig{
//		Title: "Viewer", Width: 800, Height: 600,
//	})
//	app.Load("background.jpg")
//	if err := backdrop.Run(app); err != nil {
//		log.Fatal(err)
//	}
//
// # Engine
//
// [Engine] holds the image state and applies the pan and zoom rules. It is
// driven by plain method calls ([Engine.BeginDrag], [Engine.Drag],
// [Engine.EndDrag], [Engine.SetZoom]) and redraws through a [RenderSink]
// after every change. The engine has no ebiten dependency of its own:
//
//	sink := backdrop.NewRasterRenderer(vp, nil)
//	e := backdrop.NewEngine(vp, sink)
//	e.Load(img)
//	e.SetZoom(2)
//
// [PointerInput] turns mouse state into down/move/up/leave events and
// [BindEngine] routes them to an engine. [ZoomControl] maps a slider position
// to a zoom factor through a [gween] easing curve.
//
// # Export
//
// [ScreenRenderer.QueueExport] writes the on-screen viewport as a PNG at the
// end of the next Draw. [RasterRenderer] composes frames in memory, so
// [Export] can write one without a window.
//
// # Scripted sessions
//
// [LoadScript] reads a JSON list of pointer, zoom and export steps that an
// [App] plays back one per frame. It is useful for reproducible exports and
// automated visual checks.
//
// # Logging
//
// Nothing is logged by default. [SetLogger] installs a [log/slog] logger.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package backdrop
