package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageFromRows(t *testing.T) {
	img := ImageFromRows([]string{"ab.", "c"}, ColorRed, '.')

	require.Equal(t, 3, img.W())
	require.Equal(t, 2, img.H())
	c := img.At(0, 0)
	assert.Equal(t, 'a', c.Rune)
	assert.Equal(t, ColorRed, c.Fg)
	assert.True(t, img.At(2, 0).Transparent(), "transparent rune gives a transparent cell")
	assert.True(t, img.At(1, 1).Transparent(), "short rows are padded with transparent cells")
	assert.True(t, img.At(-1, 5).Transparent(), "out-of-range At is transparent")
}

func TestImageCropFlipRotate(t *testing.T) {
	img := ImageFromRows([]string{"abc", "def"}, ColorDefault, 0)

	crop := img.Crop(1, 0, 2, 2)
	assert.Equal(t, 'b', crop.At(0, 0).Rune)
	assert.Equal(t, 'f', crop.At(1, 1).Rune)

	flipped := img.Flip(true, false)
	assert.Equal(t, 'c', flipped.At(0, 0).Rune)
	assert.Equal(t, 'd', flipped.At(2, 1).Rune)
	assert.Equal(t, 'd', img.Flip(false, true).At(0, 0).Rune)

	rotated := img.Rotate(1)
	require.Equal(t, 2, rotated.W())
	require.Equal(t, 3, rotated.H())
	// Clockwise: the bottom-left cell becomes the top-left one.
	assert.Equal(t, 'd', rotated.At(0, 0).Rune)
	assert.Equal(t, 'a', rotated.At(1, 0).Rune)

	full := img.Rotate(4)
	assert.Equal(t, 'f', full.At(2, 1).Rune)
	assert.NotSame(t, img, full, "Rotate(4) returns a copy")
}

func TestImageResizeRecolor(t *testing.T) {
	img := ImageFromRows([]string{"ab"}, ColorGreen, 0)

	big := img.Resize(4, 2)
	assert.Equal(t, 'a', big.At(1, 1).Rune)
	assert.Equal(t, 'b', big.At(2, 0).Rune)

	recolored := img.Recolor(ColorGreen, ColorRed)
	assert.Equal(t, ColorRed, recolored.At(0, 0).Fg)
	assert.Equal(t, ColorGreen, img.At(0, 0).Fg, "the source image is untouched")
}

func TestImageColorKey(t *testing.T) {
	img := NewImage(2, 1)
	img.Set(0, 0, Cell{Rune: ' ', Bg: ColorMagenta})
	img.Set(1, 0, Cell{Rune: '#', Bg: ColorMagenta})

	keyed := img.ColorKey(ColorMagenta)
	assert.True(t, keyed.At(0, 0).Transparent(), "a blank key-colored cell becomes transparent")
	assert.Equal(t, '#', keyed.At(1, 0).Rune, "cells with glyphs survive the color key")
}
