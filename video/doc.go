// Package video is the presentation side of videotext.
//
// The mask pipeline only needs somewhere to put a mask: a [Layer]. The
// [Compositor] is a software Layer that scales the current frame of a
// [FrameSource] into its frame and composites it through the mask. [Clip] is
// an in-memory player that pairs with a [Looper], which restarts playback on
// every end-of-playback event until its owner goes away.
//
// Decoding is not done here; any decoder that can hand out image.Image
// frames satisfies FrameSource.
package video
