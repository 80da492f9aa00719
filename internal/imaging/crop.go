// Package imaging crops detected label regions out of bottle photographs
// and bounds their size before text recognition.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	stddraw "image/draw"
	"image/jpeg"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/sahlen/vinkallaren/internal/detect"
)

const (
	// MaxCropDimension bounds either side of a crop to keep recognition cheap.
	MaxCropDimension = 2048

	jpegQuality = 95

	tempFilePrefix = "cropped_label_"
	tempFileSuffix = ".jpg"
)

// LoadImage decodes a JPEG or PNG from disk.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Crop cuts the bounding box out of src, clamping it to the image bounds
// first, and downscales the result if either dimension exceeds
// MaxCropDimension (aspect ratio preserved).
func Crop(src image.Image, box detect.BoundingBox) (image.Image, error) {
	bounds := src.Bounds()
	clamped := box.ClampToImage(bounds.Dx(), bounds.Dy())

	x1 := bounds.Min.X + int(clamped.X1)
	y1 := bounds.Min.Y + int(clamped.Y1)
	x2 := bounds.Min.X + int(clamped.X2)
	y2 := bounds.Min.Y + int(clamped.Y2)

	width := x2 - x1
	height := y2 - y1
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid crop dimensions: %dx%d", width, height)
	}

	cropped := image.NewRGBA(image.Rect(0, 0, width, height))
	stddraw.Draw(cropped, cropped.Bounds(), src, image.Pt(x1, y1), stddraw.Src)

	if width <= MaxCropDimension && height <= MaxCropDimension {
		return cropped, nil
	}

	scale := float64(MaxCropDimension) / float64(max(width, height))
	newWidth := int(float64(width) * scale)
	newHeight := int(float64(height) * scale)
	scaled := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), cropped, cropped.Bounds(), xdraw.Over, nil)
	return scaled, nil
}

// FitWithin returns aspect-ratio-preserving dimensions no larger than
// maxWidth x maxHeight.
func FitWithin(sourceWidth, sourceHeight, maxWidth, maxHeight int) (int, int) {
	ratio := min(
		float64(maxWidth)/float64(sourceWidth),
		float64(maxHeight)/float64(sourceHeight),
	)
	return int(float64(sourceWidth) * ratio), int(float64(sourceHeight) * ratio)
}

// EncodeJPEG writes img as JPEG bytes at archival quality.
func EncodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodePNG writes img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// ReadJPEGBytes loads a file and re-encodes it as JPEG for upload.
// JPEG sources pass through their decoded pixels; PNGs are converted.
func ReadJPEGBytes(path string) ([]byte, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return EncodeJPEG(img)
}
