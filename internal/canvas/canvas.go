// Package canvas draws centered text and horizontal rules onto a
// solid-color image.
package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas is an in-memory pixel buffer with a fixed size and background.
type Canvas struct {
	img *image.NRGBA
}

// New creates a width x height canvas filled with bg.
func New(width, height int, bg color.Color) *Canvas {
	return &Canvas{img: imaging.New(width, height, bg)}
}

// Image returns the underlying image.
func (c *Canvas) Image() *image.NRGBA { return c.img }

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Bounds().Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// TextWidth returns the horizontal extent of the ink of text in face.
func TextWidth(face font.Face, text string) fixed.Int26_6 {
	b, _ := font.BoundString(face, text)
	return b.Max.X - b.Min.X
}

// CenteredX returns the x origin that centers a run of textWidth on a
// surface surfaceWidth pixels wide. Negative when the text is wider.
func CenteredX(surfaceWidth int, textWidth fixed.Int26_6) fixed.Int26_6 {
	return (fixed.I(surfaceWidth) - textWidth) / 2
}

// DrawCenteredText draws text horizontally centered with the top of its line
// box at row y, and returns the x origin it used. Text is never wrapped;
// anything wider than the canvas runs off both edges.
func (c *Canvas) DrawCenteredText(y int, text string, face font.Face, fill color.Color) fixed.Int26_6 {
	x := CenteredX(c.Width(), TextWidth(face, text))
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(fill),
		Face: face,
		Dot:  fixed.Point26_6{X: x, Y: fixed.I(y) + face.Metrics().Ascent},
	}
	d.DrawString(text)
	return x
}

// DrawRule draws a one-pixel horizontal line on row y from margin to
// width-margin inclusive. Pixels outside the canvas are clipped.
func (c *Canvas) DrawRule(y, margin int, col color.Color) {
	if y < 0 || y >= c.Height() {
		return
	}
	dc := gg.NewContextForImage(c.img)
	dc.SetColor(col)
	dc.SetLineWidth(1)
	dc.SetLineCapButt()
	// Pixel-aligned span covering row y and columns margin..width-margin
	// exactly, so no pixel is partially covered.
	cy := float64(y) + 0.5
	dc.DrawLine(float64(margin), cy, float64(c.Width()-margin+1), cy)
	dc.Stroke()
	draw.Draw(c.img, c.img.Bounds(), dc.Image(), image.Point{}, draw.Src)
}
