// Package swatch displays colours: solid PNG swatches and terminal cards
// showing a colour in each notation.
package swatch

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/pkg/errors"

	"github.com/realh/colourconv/pkg/colour"
)

const (
	LUMA_WEIGHT_R = 0.299
	LUMA_WEIGHT_G = 0.587
	LUMA_WEIGHT_B = 0.114

	// Above this luma black text is easier to read than white.
	LIGHT_THRESHOLD = 0.5
)

// Luma returns the perceived brightness of c between 0 and 1. Alpha is
// ignored.
func Luma(c color.Color) float64 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return (float64(n.R)*LUMA_WEIGHT_R +
		float64(n.G)*LUMA_WEIGHT_G +
		float64(n.B)*LUMA_WEIGHT_B) / 255
}

// TextColour returns black or white, whichever is more legible on bg.
func TextColour(bg color.Color) colour.Value {
	if Luma(bg) > LIGHT_THRESHOLD {
		return colour.RGB(0, 0, 0)
	}
	return colour.RGB(255, 255, 255)
}

// Image returns a square of the given size filled with v.
func Image(v colour.Value, size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(v), image.Point{}, draw.Src)
	return img
}

// SavePNG writes img to fileName.
func SavePNG(img image.Image, fileName string) error {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrapf(err, "failed to open '%s' for writing", fileName)
	}
	if err = png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to encode PNG as '%s'", fileName)
	}
	if err = f.Close(); err != nil {
		err = errors.Wrapf(err, "failed to close '%s' after writing PNG",
			fileName)
	}
	return err
}
