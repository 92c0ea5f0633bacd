// Package fontload loads the preferred system font collection and falls back
// to the embedded Go fonts when it cannot be used.
package fontload

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultPath is the preferred font. Index 0 is regular, index 1 is bold.
const DefaultPath = "/System/Library/Fonts/Helvetica.ttc"

// Font sources reported by Loader.Source.
const (
	SourceSystem   = "system"
	SourceFallback = "fallback"
)

const dpi = 72 // point size == pixel size

type faceKey struct {
	size float64
	bold bool
}

// Loader hands out font faces by size and weight. It is not safe for
// concurrent use.
type Loader struct {
	path string
	logf func(format string, args ...any)

	loaded     bool
	collection *opentype.Collection
	fallback   map[bool]*opentype.Font
	faces      map[faceKey]font.Face
	usedBackup bool
}

// New creates a loader for the font file at path. logf may be nil.
func New(path string, logf func(format string, args ...any)) *Loader {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Loader{
		path:     path,
		logf:     logf,
		fallback: make(map[bool]*opentype.Font),
		faces:    make(map[faceKey]font.Face),
	}
}

// Face returns a face at the given point size. It never fails: any problem
// with the preferred font yields the embedded fallback at the same size.
func (l *Loader) Face(size float64, bold bool) font.Face {
	key := faceKey{size, bold}
	if f, ok := l.faces[key]; ok {
		return f
	}

	f, err := l.systemFace(size, bold)
	if err != nil {
		l.logf("font %s (bold=%v, %gpt) unavailable, using fallback: %v", l.path, bold, size, err)
		l.usedBackup = true
		f = l.fallbackFace(size, bold)
	}
	l.faces[key] = f
	return f
}

// Source reports whether any face handed out so far came from the fallback.
func (l *Loader) Source() string {
	if l.usedBackup {
		return SourceFallback
	}
	return SourceSystem
}

// Close releases all cached faces.
func (l *Loader) Close() error {
	var firstErr error
	for k, f := range l.faces {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(l.faces, k)
	}
	return firstErr
}

func (l *Loader) systemFace(size float64, bold bool) (font.Face, error) {
	if !l.loaded {
		l.loaded = true
		data, err := os.ReadFile(l.path)
		if err != nil {
			return nil, err
		}
		// A plain TTF/OTF parses as a collection of one.
		c, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", l.path, err)
		}
		l.collection = c
	}
	if l.collection == nil {
		return nil, fmt.Errorf("font %s failed to load earlier", l.path)
	}

	idx := 0
	if bold {
		idx = 1
	}
	fnt, err := l.collection.Font(idx)
	if err != nil {
		return nil, fmt.Errorf("font index %d: %w", idx, err)
	}
	return newFace(fnt, size)
}

func (l *Loader) fallbackFace(size float64, bold bool) font.Face {
	fnt, ok := l.fallback[bold]
	if !ok {
		data := goregular.TTF
		if bold {
			data = gobold.TTF
		}
		var err error
		fnt, err = opentype.Parse(data)
		if err != nil {
			// The embedded Go fonts are known-good.
			panic(fmt.Sprintf("fontload: parse embedded font: %v", err))
		}
		l.fallback[bold] = fnt
	}
	f, err := newFace(fnt, size)
	if err != nil {
		panic(fmt.Sprintf("fontload: embedded face at %gpt: %v", size, err))
	}
	return f
}

func newFace(fnt *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}
