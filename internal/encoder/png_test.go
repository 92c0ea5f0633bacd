package encoder

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestPNGEncoderKeepsDimensions(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1080, 90))
	for x := 0; x < 1080; x++ {
		img.SetNRGBA(x, 45, color.NRGBA{R: 245, G: 197, B: 24, A: 255})
	}

	enc := Default()
	if enc.Format() != "png" || enc.Extension() != "png" {
		t.Fatalf("unexpected default encoder %s/%s", enc.Format(), enc.Extension())
	}

	data, err := enc.Encode(img)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode config: %v", err)
	}
	if cfg.Width != 1080 || cfg.Height != 90 {
		t.Errorf("got %dx%d, want 1080x90", cfg.Width, cfg.Height)
	}

	back, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, g, b, _ := back.At(500, 45).RGBA()
	if r>>8 != 245 || g>>8 != 197 || b>>8 != 24 {
		t.Errorf("pixel changed after roundtrip: %d,%d,%d", r>>8, g>>8, b>>8)
	}
}
