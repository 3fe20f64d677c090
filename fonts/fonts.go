// Package fonts keeps the faces used for on-screen text.
package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	HUD   FontName = "hud"
	Title FontName = "title"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	mu    sync.RWMutex
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the built-in bitmap face under every name.
func LoadDefaults() {
	mu.Lock()
	defer mu.Unlock()
	fonts[HUD] = basicfont.Face7x13
	fonts[Title] = basicfont.Face7x13
}

// LoadTTF replaces name with a TrueType face parsed from ttf.
func LoadTTF(name FontName, ttf []byte, size float64) error {
	parsed, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("fonts: parse %s: %w", name, err)
	}
	mu.Lock()
	defer mu.Unlock()
	fonts[name] = truetype.NewFace(parsed, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := fonts[name]
	if !ok {
		return basicfont.Face7x13
	}
	return f
}
