// Package layout is the text-layout service used by the mask rasterizer.
//
// A Typesetter wraps rich text into lines that fit a constraint width,
// keeps the lines that fit the constraint height, reports the size those
// lines occupy, and draws them into any draw.Image with font.Drawer:
//
//	ts := layout.New()
//	size, fitted := ts.SuggestSize(tx, geom.Sz(300, 120))
//	if fitted < tx.Len() {
//	    // text overflows the box and will be clipped
//	}
//	ts.Draw(dst, tx, geom.R(0, 0, size.W, size.H))
//
// Lines break at whitespace first and fall back to character boundaries
// for words wider than the constraint. Hard line breaks start a new
// paragraph. The first line is always kept, even when it is taller than the
// constraint, so that overflowing text is clipped rather than dropped.
//
// String advances are memoized per font source and size in a bounded LRU
// shared by every call on the Typesetter; see WithCacheSize.
package layout
