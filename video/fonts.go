package video

import (
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// resolveFace loads the configured font file, falling back to the
// embedded Go Regular face. The second return reports whether the
// fallback was taken, so callers can observe the substitution.
func resolveFace(fontFile string, size float64) (font.Face, bool) {
	opts := &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull}

	if fontFile != "" {
		if face, err := loadFace(fontFile, opts); err == nil {
			return face, false
		} else {
			log.Printf("[video] Warning: font %s unavailable: %v — using built-in face", fontFile, err)
		}
	}

	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		// Embedded font failing to parse leaves only the bitmap
		// last-resort path in RenderTextFrame.
		return nil, true
	}
	face, err := opentype.NewFace(f, opts)
	if err != nil {
		return nil, true
	}
	return face, fontFile != ""
}

func loadFace(path string, opts *opentype.FaceOptions) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, opts)
}
