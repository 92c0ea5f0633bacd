package encoder

import (
	"image"
)

// Encoder serializes a rendered ad.
type Encoder interface {
	// Format returns the output format name (e.g. "png").
	Format() string

	// Extension returns the file extension without dot.
	Extension() string

	// Encode converts the image to bytes.
	Encode(img image.Image) ([]byte, error)
}

// Default returns the encoder used for generated ads.
func Default() Encoder { return &PNGEncoder{} }
