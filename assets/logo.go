// Package assets loads the shop logo shown on screens.
package assets

import (
	"image"
	"image/color"
	"image/draw"
	"os"

	_ "image/jpeg"
	_ "image/png"
)

// Load reads the logo image at path. A missing or unreadable file falls back
// to a flat gray placeholder of the requested size, so screens always have
// something to draw.
func Load(path string, w, h int) image.Image {
	f, err := os.Open(path)
	if err != nil {
		return Placeholder(w, h)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Placeholder(w, h)
	}
	return img
}

// Placeholder returns a flat gray image.
func Placeholder(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	gray := color.RGBA{R: 180, G: 180, B: 180, A: 255}
	draw.Draw(img, img.Bounds(), &image.Uniform{C: gray}, image.Point{}, draw.Src)
	return img
}

// Replace copies the image at src over the configured logo path. The new
// logo shows up on the next render.
func Replace(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
