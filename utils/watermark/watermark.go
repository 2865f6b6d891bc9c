// Package watermark stamps inspection photos before they are uploaded.
package watermark

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const Text = "VERIFIED"

// MaxPixels bounds the decoded size of one photo, 40 megapixels.
const MaxPixels = 40_000_000

var ErrTooLarge = errors.New("image dimensions exceed the pixel budget")

var (
	BandColor = color.NRGBA{R: 0, G: 128, B: 0, A: 160}
	TextColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Apply decodes a PNG or JPEG, stamps it and encodes it back in the same format.
// Dimensions are checked from the header before any pixel buffer is allocated.
func Apply(data []byte) ([]byte, string, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, "", fmt.Errorf("%w: %dx%d", ErrTooLarge, cfg.Width, cfg.Height)
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}

	b := src.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(canvas, canvas.Bounds(), src, b.Min, draw.Src)
	Stamp(canvas)

	var buf bytes.Buffer
	switch format {
	case "png":
		if err := png.Encode(&buf, canvas); err != nil {
			return nil, "", fmt.Errorf("encode png: %w", err)
		}
		return buf.Bytes(), "image/png", nil
	case "jpeg":
		if err := jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: 90}); err != nil {
			return nil, "", fmt.Errorf("encode jpeg: %w", err)
		}
		return buf.Bytes(), "image/jpeg", nil
	default:
		return nil, "", fmt.Errorf("unsupported image format %q", format)
	}
}

// BandRect is the region covered by the translucent band: the bottom fifth.
func BandRect(bounds image.Rectangle) image.Rectangle {
	h := bounds.Dy() / 5
	if h < 1 {
		h = 1
	}
	return image.Rect(bounds.Min.X, bounds.Max.Y-h, bounds.Max.X, bounds.Max.Y)
}

// Stamp draws the band and the centred text in place.
func Stamp(img *image.RGBA) {
	bounds := img.Bounds()
	band := BandRect(bounds)
	draw.Draw(img, band, image.NewUniform(BandColor), image.Point{}, draw.Over)

	face := basicfont.Face7x13
	textW := face.Advance * len(Text)
	textImg := image.NewRGBA(image.Rect(0, 0, textW, face.Height))
	d := &font.Drawer{
		Dst:  textImg,
		Src:  image.NewUniform(TextColor),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(Text)

	scale := float64(band.Dy()) * 0.7 / float64(face.Height)
	if s := float64(bounds.Dx()) * 0.8 / float64(textW); s < scale {
		scale = s
	}
	tw, th := int(float64(textW)*scale), int(float64(face.Height)*scale)
	if tw == 0 || th == 0 {
		return
	}

	x0 := bounds.Min.X + (bounds.Dx()-tw)/2
	y0 := band.Min.Y + (band.Dy()-th)/2
	draw.NearestNeighbor.Scale(img, image.Rect(x0, y0, x0+tw, y0+th), textImg, textImg.Bounds(), draw.Over, nil)
}
