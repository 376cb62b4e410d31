package mathbox

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/mathbox/internal/stroke"
)

// MaxSurfaceSize is the largest width or height NewSurface accepts.
const MaxSurfaceSize = 1 << 15

// Surface is a rectangular RGBA pixel buffer that plans paint into.
// Painting composites the current ink color source-over.
//
// Surface implements draw.Image. It is not safe for concurrent use.
type Surface struct {
	img *image.RGBA
	ink color.Color
}

// NewSurface allocates a transparent surface of exactly width x height pixels.
// It returns ErrInvalidSize for non-positive or oversized dimensions.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 || width > MaxSurfaceSize || height > MaxSurfaceSize {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width > math.MaxInt/4/height {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrInvalidSize, width, height)
	}
	return &Surface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		ink: Black,
	}, nil
}

// Width returns the width of the surface.
func (s *Surface) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the height of the surface.
func (s *Surface) Height() int {
	return s.img.Rect.Dy()
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return s.img.Rect
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.RGBAModel
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.img.At(x, y)
}

// Set implements the draw.Image interface.
func (s *Surface) Set(x, y int, c color.Color) {
	s.img.Set(x, y, c)
}

// Image returns the backing image. Writes to it are visible in the surface.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Ink returns the color used by fill and stroke operations.
func (s *Surface) Ink() color.Color {
	return s.ink
}

// SetInk sets the color used by fill and stroke operations.
func (s *Surface) SetInk(c color.Color) {
	s.ink = c
}

// Fill replaces every pixel with c.
func (s *Surface) Fill(c color.Color) {
	draw.Draw(s.img, s.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect composites a w x h rectangle of ink with its top-left corner at (x, y).
// The rectangle is clipped to the surface.
func (s *Surface) FillRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	draw.Draw(s.img, image.Rect(x, y, x+w, y+h), image.NewUniform(s.ink), image.Point{}, draw.Over)
}

// FillPolygon composites an anti-aliased closed polygon of ink.
func (s *Surface) FillPolygon(pts []Point) {
	if len(pts) < 3 {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	r := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(s.img.Rect)
	if r.Empty() {
		return
	}

	ox, oy := float32(r.Min.X), float32(r.Min.Y)
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	z.MoveTo(float32(pts[0].X)-ox, float32(pts[0].Y)-oy)
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X)-ox, float32(p.Y)-oy)
	}
	z.ClosePath()
	z.Draw(s.img, r, image.NewUniform(s.ink), image.Point{})
}

// StrokePolyline composites an open polyline stroked with the given width.
// Corners use miter joins and the ends are square capped.
func (s *Surface) StrokePolyline(pts []Point, width float64) {
	style := stroke.Style{
		Width:      width,
		Cap:        stroke.LineCapSquare,
		Join:       stroke.LineJoinMiter,
		MiterLimit: 4.0,
	}
	s.FillPolygon(fromStroke(stroke.Expand(toStroke(pts), style)))
}

// DrawSurface composites the region r of src onto s with r.Min placed at (x, y).
func (s *Surface) DrawSurface(src *Surface, r image.Rectangle, x, y int) {
	r = r.Intersect(src.img.Rect)
	if r.Empty() {
		return
	}
	dr := image.Rect(x, y, x+r.Dx(), y+r.Dy())
	draw.Draw(s.img, dr, src.img, r.Min, draw.Over)
}

// Coverage returns the fraction of pixels whose value differs from bg.
func (s *Surface) Coverage(bg color.Color) float64 {
	want := color.RGBAModel.Convert(bg).(color.RGBA)
	pix := s.img.Pix
	total := len(pix) / 4
	if total == 0 {
		return 0
	}

	inked := 0
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != want.R || pix[i+1] != want.G || pix[i+2] != want.B || pix[i+3] != want.A {
			inked++
		}
	}
	return float64(inked) / float64(total)
}

// EncodePNG writes the surface to w in PNG format.
func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := s.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
