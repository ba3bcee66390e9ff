// Package videotext renders a string as an alpha mask through which a video
// plays, producing video-filled text.
//
// # Overview
//
// A [View] owns the text (plain or rich), the bounding box and the current
// render state. Layout runs a linear pipeline:
//
//  1. Resolve normalizes the text into one rich run, sized for the current
//     accessibility text-size category and the rasterization scale.
//  2. The Rasterizer fits the text into the box, places it according to its
//     alignment and draws it into a fresh single-plane alpha bitmap.
//  3. The Applicator binds the mask to the video layer and keeps the layer
//     and mask frames matched to the bounds.
//  4. The access.Synchronizer publishes the placement (in screen
//     coordinates), label and static-text role to assistive technology.
//
// # Quick Start
//
//	clip := video.NewClip(time.Second/30, frames...)
//	layer := video.NewCompositor(clip, video.WithScale(2))
//
//	v := videotext.NewView(
//	    videotext.WithScale(2),
//	    videotext.WithLayer(layer),
//	)
//	defer v.Close()
//
//	v.SetText("Hello World!")
//	v.SetBounds(geom.Sz(320, 120))
//	v.Attach(clip, clip)
//	v.Layout()
//
//	_ = layer.Composite(screen)
//
// # Readiness and errors
//
// A degenerate box or empty text is not an error: Layout reports false and
// leaves the previous state in place. Text that overflows the box is drawn
// clipped and reported through the logger only. Failure to allocate the
// offscreen surface is an environment defect and panics with an
// [*AllocationError].
//
// # Coordinate System
//
// Bounds are in device-independent units with the origin at the top-left.
// Masks and placements are in device pixels: units multiplied by the
// rasterization scale.
package videotext
