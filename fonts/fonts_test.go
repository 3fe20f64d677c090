package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/basicfont"
)

func TestUnknownFontFallsBack(t *testing.T) {
	assert.Equal(t, basicfont.Face7x13, FontName("missing").Get())
}

func TestLoadDefaults(t *testing.T) {
	LoadDefaults()
	assert.NotNil(t, HUD.Get())
	assert.NotNil(t, Title.Get())
}

func TestLoadTTFRejectsGarbage(t *testing.T) {
	err := LoadTTF(Title, []byte("not a font"), 20)
	assert.Error(t, err)
}
