// Package imagefit scales images onto a mode's canvas while preserving
// aspect ratio, centering the result over a black background.
package imagefit

import (
	"image"
	"image/color"
	"log"
	"math"

	"golang.org/x/image/draw"
)

// oversizeFactor is the source-to-target pixel ratio above which
// fitting logs a warning. Decoding and scaling a source that large
// costs far more memory than the canvas it produces.
const oversizeFactor = 16

// Result describes a fitted image: the canvas itself plus the geometry
// of the placement, which callers surface as processing metadata.
type Result struct {
	// Image is the target-sized canvas with the scaled source centered
	// on an opaque black background.
	Image *image.RGBA

	// SourceWidth and SourceHeight are the dimensions of the input.
	SourceWidth  int
	SourceHeight int

	// Scale is the factor applied to both axes. Zero when the source
	// was empty.
	Scale float64

	// ScaledWidth and ScaledHeight are the dimensions of the scaled
	// source on the canvas.
	ScaledWidth  int
	ScaledHeight int

	// OffsetX and OffsetY locate the scaled image's top-left corner.
	OffsetX int
	OffsetY int
}

// Bars returns the widths of the black margins around the scaled image
// in left, top, right, bottom order. Opposite bars differ by at most
// one pixel when the centering division leaves a remainder.
func (r *Result) Bars() (left, top, right, bottom int) {
	canvas := r.Image.Bounds()
	left = r.OffsetX
	top = r.OffsetY
	right = canvas.Dx() - r.OffsetX - r.ScaledWidth
	bottom = canvas.Dy() - r.OffsetY - r.ScaledHeight
	return left, top, right, bottom
}

// Fit scales src to fill targetWidth x targetHeight without distortion.
// The smaller of the two axis ratios applies to both axes, small images
// scale up, and the result is centered with black bars on the axis that
// does not fill. An empty source yields an all-black canvas.
func Fit(src image.Image, targetWidth, targetHeight int) *Result {
	srcBounds := src.Bounds()
	srcWidth, srcHeight := srcBounds.Dx(), srcBounds.Dy()

	canvas := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.RGBA{A: 255}), image.Point{}, draw.Src)

	res := &Result{
		Image:        canvas,
		SourceWidth:  srcWidth,
		SourceHeight: srcHeight,
	}

	if srcWidth == 0 || srcHeight == 0 {
		res.OffsetX = targetWidth / 2
		res.OffsetY = targetHeight / 2
		return res
	}

	if int64(srcWidth)*int64(srcHeight) > int64(targetWidth)*int64(targetHeight)*oversizeFactor {
		log.Printf("warning: source image %dx%d is much larger than the %dx%d target, consider downscaling it first",
			srcWidth, srcHeight, targetWidth, targetHeight)
	}

	scaleX := float64(targetWidth) / float64(srcWidth)
	scaleY := float64(targetHeight) / float64(srcHeight)
	scale := math.Min(scaleX, scaleY)

	scaledWidth := int(float64(srcWidth) * scale)
	scaledHeight := int(float64(srcHeight) * scale)

	res.Scale = scale
	res.ScaledWidth = scaledWidth
	res.ScaledHeight = scaledHeight
	res.OffsetX = (targetWidth - scaledWidth) / 2
	res.OffsetY = (targetHeight - scaledHeight) / 2

	if scaledWidth > 0 && scaledHeight > 0 {
		dst := image.Rect(res.OffsetX, res.OffsetY, res.OffsetX+scaledWidth, res.OffsetY+scaledHeight)
		draw.CatmullRom.Scale(canvas, dst, src, srcBounds, draw.Src, nil)
	}

	return res
}
