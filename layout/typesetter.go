package layout

import (
	"image"
	"image/color"
	"image/draw"
	"log/slog"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/videotext/geom"
	"github.com/gogpu/videotext/internal/cache"
	"github.com/gogpu/videotext/rich"
	"github.com/gogpu/videotext/text"
)

// Typesetter lays out and draws rich text. Run font sizes are taken as
// pixel sizes; callers scale fonts before handing text over.
//
// A Typesetter holds no per-call state besides its measurement cache and
// may be reused, including from several goroutines.
type Typesetter struct {
	shaper      text.Shaper
	hinting     text.Hinting
	lineSpacing float64
	logger      *slog.Logger

	cacheSize int
	advances  *cache.LRU[advanceKey, float64]
}

// DefaultCacheSize is the number of measured strings a Typesetter keeps.
const DefaultCacheSize = 4096

// advanceKey identifies one measurement. Faces are rebuilt per call, so the
// key holds what the face was built from rather than the face itself.
type advanceKey struct {
	source  *text.FontSource
	size    float64
	hinting text.Hinting
	s       string
}

// New creates a Typesetter.
func New(opts ...Option) *Typesetter {
	t := &Typesetter{
		shaper:      text.DefaultShaper(),
		hinting:     text.HintingNone,
		lineSpacing: 1,
		logger:      slog.New(slog.DiscardHandler),
		cacheSize:   DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.cacheSize > 0 {
		t.advances = cache.New[advanceKey, float64](t.cacheSize)
	}
	return t
}

// CacheStats reports the measurement cache counters. It is the zero Stats
// when caching is disabled.
func (t *Typesetter) CacheStats() cache.Stats {
	if t.advances == nil {
		return cache.Stats{}
	}
	return t.advances.Stats()
}

// advance measures s in face, consulting the cache first.
func (t *Typesetter) advance(s string, face *text.Face) float64 {
	if t.advances == nil {
		return t.shaper.Advance(s, face)
	}
	key := advanceKey{source: face.Source(), size: face.Size(), hinting: t.hinting, s: s}
	return t.advances.GetOrCreate(key, func() float64 {
		return t.shaper.Advance(s, face)
	})
}

// SuggestSize lays tx out within constraint and returns the size occupied
// by the lines that fit, together with the number of runes those lines
// consume. A result smaller than tx.Len() means the text overflows.
func (t *Typesetter) SuggestSize(tx rich.Text, constraint geom.Size) (geom.Size, int) {
	if tx.IsEmpty() || constraint.Degenerate() {
		return geom.Size{}, 0
	}

	faces := t.newFaceSet(tx)
	defer faces.close()

	lines := t.fitLines(t.lines(tx, constraint.W, faces), constraint.H)
	return linesSize(lines), fittedRunes(lines)
}

// Draw lays tx out within frame and draws the lines that fit, aligned per
// line by the first run's alignment and clipped to frame.
func (t *Typesetter) Draw(dst draw.Image, tx rich.Text, frame geom.Rect) {
	if dst == nil || tx.IsEmpty() || frame.Empty() {
		return
	}

	clip := frame.Image().Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	target := dst
	if si, ok := dst.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		if sub, ok := si.SubImage(clip).(draw.Image); ok {
			target = sub
		}
	}

	faces := t.newFaceSet(tx)
	defer faces.close()

	lines := t.fitLines(t.lines(tx, frame.W, faces), frame.H)
	style, _ := tx.FirstStyle()

	y := frame.Y
	for i := range lines {
		ln := &lines[i]
		if i > 0 {
			y += lines[i-1].gap
		}
		x := frame.X + alignOffset(style.Align, frame.W, ln.width)
		dot := fixed.Point26_6{X: toFixed(x), Y: toFixed(y + ln.ascent)}

		for _, p := range ln.pieces {
			face := faces.get(p.run)
			if face == nil {
				continue
			}
			d := &font.Drawer{
				Dst:  target,
				Src:  image.NewUniform(fillColor(tx[p.run].Style.Fill)),
				Face: face.XFace(),
				Dot:  dot,
			}
			d.DrawString(p.text)
			dot = d.Dot
		}
		y += ln.height()
	}
}

// alignOffset returns the x offset of a line of width w inside width W.
func alignOffset(a text.Alignment, W, w float64) float64 {
	switch a {
	case text.AlignNatural, text.AlignLeft:
		return 0
	case text.AlignRight:
		return W - w
	default:
		return (W - w) / 2
	}
}

func fillColor(c color.Color) color.Color {
	if c == nil {
		return color.Opaque
	}
	return c
}

// lines wraps every paragraph of tx at maxWidth.
func (t *Typesetter) lines(tx rich.Text, maxWidth float64, faces *faceSet) []line {
	cells := flatten(tx)
	measure := func(cs []cell) float64 {
		var w float64
		for _, p := range splitPieces(trimTrailingSpace(cs)) {
			if face := faces.get(p.run); face != nil {
				w += t.advance(p.text, face)
			}
		}
		return w
	}

	var out []line
	start := 0
	for start <= len(cells) {
		end := start
		for end < len(cells) && cells[end].r != '\n' {
			end++
		}
		para := cells[start:end]
		hardBreak := end < len(cells)

		// An empty paragraph takes its metrics from the break itself.
		metricsRun := -1
		if len(para) == 0 {
			if hardBreak {
				metricsRun = cells[end].run
			} else if start > 0 {
				metricsRun = cells[start-1].run
			}
		}

		for _, span := range wrapParagraph(para, maxWidth, measure) {
			seg := para[span[0]:span[1]]
			ln := line{
				pieces: splitPieces(seg),
				width:  measure(seg),
				end:    start + span[1],
			}
			t.lineMetrics(&ln, faces, metricsRun)
			out = append(out, ln)
		}
		if hardBreak {
			out[len(out)-1].end++
		}
		if !hardBreak {
			break
		}
		start = end + 1
	}
	return out
}

func (t *Typesetter) lineMetrics(ln *line, faces *faceSet, fallbackRun int) {
	runs := make([]int, 0, len(ln.pieces))
	for _, p := range ln.pieces {
		runs = append(runs, p.run)
	}
	if len(runs) == 0 && fallbackRun >= 0 {
		runs = append(runs, fallbackRun)
	}
	for _, r := range runs {
		face := faces.get(r)
		if face == nil {
			continue
		}
		m := face.Metrics()
		ln.ascent = max(ln.ascent, m.Ascent)
		ln.descent = max(ln.descent, m.Descent)
		ln.gap = max(ln.gap, m.LineGap*t.lineSpacing)
	}
}

// fitLines keeps the lines whose bottom edge fits maxHeight. The first line
// is always kept.
func (t *Typesetter) fitLines(lines []line, maxHeight float64) []line {
	if len(lines) == 0 {
		return nil
	}
	h := lines[0].height()
	n := 1
	for n < len(lines) {
		next := h + lines[n-1].gap + lines[n].height()
		if !fits(next, maxHeight) {
			break
		}
		h = next
		n++
	}
	return lines[:n]
}

func linesSize(lines []line) geom.Size {
	var s geom.Size
	for i := range lines {
		s.W = max(s.W, lines[i].width)
		if i > 0 {
			s.H += lines[i-1].gap
		}
		s.H += lines[i].height()
	}
	return s
}

func fittedRunes(lines []line) int {
	if len(lines) == 0 {
		return 0
	}
	return lines[len(lines)-1].end
}

func flatten(tx rich.Text) []cell {
	cells := make([]cell, 0, tx.Len())
	for i, r := range tx {
		for _, c := range r.Text {
			cells = append(cells, cell{r: c, run: i})
		}
	}
	return cells
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// faceSet instantiates one face per distinct run font for a single call.
type faceSet struct {
	byRun  []*text.Face
	byFont map[text.Font]*text.Face
}

func (t *Typesetter) newFaceSet(tx rich.Text) *faceSet {
	fs := &faceSet{
		byRun:  make([]*text.Face, len(tx)),
		byFont: make(map[text.Font]*text.Face),
	}
	for i, r := range tx {
		f := r.Style.Font
		if f.IsZero() {
			f = text.DefaultFont()
		}
		if face, ok := fs.byFont[f]; ok {
			fs.byRun[i] = face
			continue
		}
		face, err := f.Face(1, text.WithHinting(t.hinting))
		if err != nil {
			t.logger.Warn("layout: skipping run with unusable font",
				slog.Int("run", i), slog.Float64("size", f.Size), slog.String("err", err.Error()))
			fs.byFont[f] = nil
			continue
		}
		fs.byFont[f] = face
		fs.byRun[i] = face
	}
	return fs
}

func (fs *faceSet) get(run int) *text.Face {
	if run < 0 || run >= len(fs.byRun) {
		return nil
	}
	return fs.byRun[run]
}

func (fs *faceSet) close() {
	for _, f := range fs.byFont {
		if f != nil {
			_ = f.Close()
		}
	}
}
