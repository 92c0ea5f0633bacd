package generator

import (
	"image"

	"github.com/AnyUserName/adgen/internal/ads"
	"github.com/AnyUserName/adgen/internal/canvas"
	"github.com/AnyUserName/adgen/internal/fontload"
)

// render draws one ad: background, rules, then text lines in order.
func render(ad ads.Ad, fonts *fontload.Loader) image.Image {
	c := canvas.New(ad.Width, ad.Height, ads.Background)
	for _, r := range ad.Rules {
		c.DrawRule(r.Y, r.Margin, ads.DarkLine)
	}
	for _, l := range ad.Lines {
		c.DrawCenteredText(l.Y, l.Text, fonts.Face(l.Size, l.Bold), l.Color)
	}
	return c.Image()
}
