package ads

import "image/color"

// Palette shared by every ad.
var (
	Background = color.NRGBA{R: 10, G: 10, B: 10, A: 255}
	Gold       = color.NRGBA{R: 245, G: 197, B: 24, A: 255}
	Dim        = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	White      = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	DarkLine   = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	Brand      = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
)

// Rule is a one-pixel horizontal line at row Y, inset by Margin on both sides.
type Rule struct {
	Y      int
	Margin int
}

// TextLine is one centered line of text. Y is the top of the line box.
type TextLine struct {
	Y     int
	Text  string
	Size  float64 // points at 72 DPI, i.e. pixels
	Bold  bool
	Color color.NRGBA
}

// Ad describes one placeholder image.
type Ad struct {
	Name     string
	Label    string // printed in the confirmation line
	FileName string
	Width    int
	Height   int
	Rules    []Rule
	Lines    []TextLine
}

const subline = "Advertise on our boards  ·  poolcue.io"

// Built-in ads, in generation order.
var catalog = []Ad{
	{
		Name:     "banner",
		Label:    "Banner 1080x90",
		FileName: "ad-banner-1080x90.png",
		Width:    1080,
		Height:   90,
		Rules:    []Rule{{Y: 1, Margin: 40}},
		Lines: []TextLine{
			{Y: 20, Text: "YOUR AD HERE", Size: 22, Bold: true, Color: Gold},
			{Y: 50, Text: subline, Size: 18, Color: Dim},
		},
	},
	{
		Name:     "idle",
		Label:    "Idle 1080x240",
		FileName: "ad-idle-1080x240.png",
		Width:    1080,
		Height:   240,
		Rules:    []Rule{{Y: 1, Margin: 100}, {Y: 238, Margin: 100}},
		Lines: []TextLine{
			{Y: 45, Text: "YOUR AD HERE", Size: 36, Bold: true, Color: Gold},
			{Y: 100, Text: "Interested in advertising on our boards?", Size: 22, Color: White},
			{Y: 145, Text: "Reach out at  poolcue.io", Size: 20, Color: Dim},
			{Y: 205, Text: "POOL CUE", Size: 13, Color: Brand},
		},
	},
	{
		// Horizontal on purpose: the side slots show it rotated 90°.
		Name:     "side",
		Label:    "Side 1080x120",
		FileName: "ad-side-1080x120.png",
		Width:    1080,
		Height:   120,
		Rules:    []Rule{{Y: 1, Margin: 60}, {Y: 118, Margin: 60}},
		Lines: []TextLine{
			{Y: 25, Text: "YOUR AD HERE", Size: 26, Bold: true, Color: Gold},
			{Y: 65, Text: subline, Size: 18, Color: Dim},
		},
	},
}

// All returns a copy of the built-in ads in generation order.
func All() []Ad {
	out := make([]Ad, len(catalog))
	copy(out, catalog)
	return out
}

// Get returns the ad with the given name.
func Get(name string) (Ad, bool) {
	for _, a := range catalog {
		if a.Name == name {
			return a, true
		}
	}
	return Ad{}, false
}

// ByFileName returns the ad that is written to fileName.
func ByFileName(fileName string) (Ad, bool) {
	for _, a := range catalog {
		if a.FileName == fileName {
			return a, true
		}
	}
	return Ad{}, false
}
