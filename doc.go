// Package picsel curates image selections and shows them as an animated 2D
// point cloud on [Ebitengine].
//
// A [Selection] is an ordered list of [Source] values (scanned folders or
// other selection files), each with the subset of its images that are
// selected. Selections are saved as JSON documents that keep their source
// order.
//
// # Quick start
//
// [NewApp] builds the window state and [Run] opens it:
//
//	app := picsel.NewApp(ctx, picsel.DefaultConfig(), logger)
//	if err := app.Open("picks.json"); err != nil {
//		return err
//	}
//	if err := app.Reload(); err != nil {
//		return err
//	}
//	return picsel.Run(app)
//
// # Layouts
//
// Every item is drawn as a [Circle] produced by a [Strategy]. Two are built
// in: [RandomLayout] scatters items over the unit square from a seed, and
// [HilbertLayout] orders items by capture time along a Hilbert curve so that
// photos taken close together in time stay close together on screen.
// Strategies are rebuilt by [Reload], which decodes every item concurrently
// and then feeds the samples to each strategy in source order.
//
// Switching layouts animates: an [Interpolation] blends the circles of two
// strategies with a smoothstep curve until it collapses into a [Constant].
//
// # Interaction
//
// The [Camera] pans with a drag and zooms about the cursor with the wheel.
// A double click hit-tests the current frame ([HitTest]) and points the
// companion [Viewer] at the item under the cursor. Keyboard commands are
// listed on [Action].
//
// Frame logic lives in [App.Step], which takes a plain [FrameInput], so the
// whole app can be driven from tests or from a YAML input script
// ([ParseScript]) without a window.
//
// Plotter events can be bridged into a [Donburi] world with picsel/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package picsel
