package render

import (
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/Adithya-Monish-Kumar-K/wordfreq/internal/analyzer"
	apperrors "github.com/Adithya-Monish-Kumar-K/wordfreq/pkg/errors"
)

const (
	minFontSize  = 10.0
	spiralStep   = 0.1
	spiralGrowth = 2.0
	wordPadding  = 2.0
)

var palette = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	color.RGBA{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
}

// CloudOptions sizes the word cloud.
type CloudOptions struct {
	Width    int
	Height   int
	MaxWords int
}

// Placement is where one word landed in the cloud. X and Y are the centre of
// its bounding box.
type Placement struct {
	Word     string
	Count    int
	FontSize float64
	X, Y     float64
	W, H     float64
}

func (p Placement) overlaps(o Placement) bool {
	return math.Abs(p.X-o.X)*2 < p.W+o.W+2*wordPadding &&
		math.Abs(p.Y-o.Y)*2 < p.H+o.H+2*wordPadding
}

func (p Placement) inside(width, height float64) bool {
	return p.X-p.W/2 >= 0 && p.X+p.W/2 <= width &&
		p.Y-p.H/2 >= 0 && p.Y+p.H/2 <= height
}

// MeasureFunc reports the rendered width and height of word at size.
type MeasureFunc func(word string, size float64) (w, h float64)

// Layout places the most frequent words first, each on an Archimedean spiral
// from the centre until it fits without overlapping earlier words. Words
// that find no room are left out.
func Layout(freqs map[string]int, opts CloudOptions, measure MeasureFunc) []Placement {
	entries := analyzer.Rank(freqs)
	if opts.MaxWords > 0 && len(entries) > opts.MaxWords {
		entries = entries[:opts.MaxWords]
	}
	if len(entries) == 0 {
		return nil
	}

	width, height := float64(opts.Width), float64(opts.Height)
	maxFont := math.Max(minFontSize, height/4)
	hi, lo := entries[0].Count, entries[len(entries)-1].Count
	cx, cy := width/2, height/2
	aspect := height / width
	limit := math.Hypot(width, height) / spiralGrowth

	placed := make([]Placement, 0, len(entries))
	for _, e := range entries {
		size := scaleFont(e.Count, lo, hi, maxFont)
		w, h := measure(e.Token, size)
		candidate := Placement{Word: e.Token, Count: e.Count, FontSize: size, W: w, H: h}

		for t := 0.0; t < limit; t += spiralStep {
			candidate.X = cx + spiralGrowth*t*math.Cos(t)
			candidate.Y = cy + spiralGrowth*t*math.Sin(t)*aspect
			if !candidate.inside(width, height) || collides(candidate, placed) {
				continue
			}
			placed = append(placed, candidate)
			break
		}
	}
	return placed
}

// WordCloud draws freqs as a PNG word cloud on a white background.
func WordCloud(w io.Writer, freqs map[string]int, opts CloudOptions) error {
	if len(freqs) == 0 {
		return apperrors.ErrEmptyCorpus
	}
	f, err := loadFont()
	if err != nil {
		return apperrors.Newf(apperrors.ErrRender, "loading font: %v", err)
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetColor(color.White)
	dc.Clear()

	faces := newFaceCache(f)
	measure := func(word string, size float64) (float64, float64) {
		dc.SetFontFace(faces.get(size))
		return dc.MeasureString(word)
	}

	for i, p := range Layout(freqs, opts, measure) {
		dc.SetFontFace(faces.get(p.FontSize))
		dc.SetColor(palette[i%len(palette)])
		dc.DrawStringAnchored(p.Word, p.X, p.Y, 0.5, 0.5)
	}

	if err := dc.EncodePNG(w); err != nil {
		return apperrors.Newf(apperrors.ErrRender, "word cloud: %v", err)
	}
	return nil
}

type faceCache struct {
	font  *truetype.Font
	faces map[float64]font.Face
}

func newFaceCache(f *truetype.Font) *faceCache {
	return &faceCache{font: f, faces: make(map[float64]font.Face)}
}

func (c *faceCache) get(size float64) font.Face {
	if face, ok := c.faces[size]; ok {
		return face
	}
	face := truetype.NewFace(c.font, &truetype.Options{Size: size})
	c.faces[size] = face
	return face
}

func scaleFont(count, lo, hi int, maxFont float64) float64 {
	if hi == lo {
		return maxFont
	}
	ratio := float64(count-lo) / float64(hi-lo)
	return math.Round(minFontSize + ratio*(maxFont-minFontSize))
}

func collides(p Placement, placed []Placement) bool {
	for _, o := range placed {
		if p.overlaps(o) {
			return true
		}
	}
	return false
}
