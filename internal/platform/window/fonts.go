package window

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/neon-velocity/internal/core"
)

type faceKey struct {
	weight core.FontWeight
	size   float64
}

var (
	faceMu    sync.Mutex
	faceCache = map[faceKey]font.Face{}
	fontFiles = map[core.FontWeight][]byte{
		core.FontRegular: goregular.TTF,
		core.FontBold:    gobold.TTF,
	}
)

// face returns a cached Go font face for f.
func face(f core.Font) (font.Face, error) {
	size := f.Size
	if !core.Finite(size) || size <= 0 {
		size = 16
	}
	k := faceKey{weight: f.Weight, size: size}

	faceMu.Lock()
	defer faceMu.Unlock()

	if ff, ok := faceCache[k]; ok {
		return ff, nil
	}
	data, ok := fontFiles[f.Weight]
	if !ok {
		data = goregular.TTF
	}
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	ff, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	faceCache[k] = ff
	return ff, nil
}
