package imaging

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahlen/vinkallaren/internal/detect"
)

func testImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	return img
}

func TestCrop(t *testing.T) {
	src := testImage(400, 600)

	cropped, err := Crop(src, detect.BoundingBox{X1: 100, Y1: 150, X2: 300, Y2: 450})
	require.NoError(t, err)

	assert.Equal(t, 200, cropped.Bounds().Dx())
	assert.Equal(t, 300, cropped.Bounds().Dy())
}

func TestCrop_ClampsToImageBounds(t *testing.T) {
	src := testImage(200, 200)

	cropped, err := Crop(src, detect.BoundingBox{X1: -50, Y1: -50, X2: 500, Y2: 500})
	require.NoError(t, err)

	assert.Equal(t, 200, cropped.Bounds().Dx())
	assert.Equal(t, 200, cropped.Bounds().Dy())
}

func TestCrop_EmptyBox(t *testing.T) {
	src := testImage(200, 200)

	_, err := Crop(src, detect.BoundingBox{X1: 100, Y1: 100, X2: 100, Y2: 150})
	assert.Error(t, err)
}

func TestCrop_DownscalesLargeCrops(t *testing.T) {
	src := testImage(4096, 1024)

	cropped, err := Crop(src, detect.BoundingBox{X1: 0, Y1: 0, X2: 4096, Y2: 1024})
	require.NoError(t, err)

	assert.Equal(t, MaxCropDimension, cropped.Bounds().Dx())
	assert.Equal(t, 512, cropped.Bounds().Dy())
}

func TestFitWithin(t *testing.T) {
	w, h := FitWithin(4096, 2048, 2048, 2048)
	assert.Equal(t, 2048, w)
	assert.Equal(t, 1024, h)

	w, h = FitWithin(1024, 4096, 2048, 2048)
	assert.Equal(t, 512, w)
	assert.Equal(t, 2048, h)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	src := testImage(64, 48)

	data, err := EncodeJPEG(src)
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "label.jpg")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	img, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestLoadImage_MissingFile(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "absent.jpg"))
	assert.Error(t, err)
}

func TestTempStore_SaveJPEG(t *testing.T) {
	store, err := NewTempStore(t.TempDir(), 0, nil)
	require.NoError(t, err)

	path, err := store.SaveJPEG(testImage(32, 32))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filepath.Base(path), "cropped_label_"))
	assert.True(t, strings.HasSuffix(path, ".jpg"))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestTempStore_SweepRemovesOnlyStaleFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewTempStore(dir, time.Hour, nil)
	require.NoError(t, err)

	stale, err := store.SaveJPEG(testImage(16, 16))
	require.NoError(t, err)
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	fresh, err := store.SaveJPEG(testImage(16, 16))
	require.NoError(t, err)

	unrelated := filepath.Join(dir, "keep.txt")
	require.NoError(t, os.WriteFile(unrelated, []byte("x"), 0o644))
	require.NoError(t, os.Chtimes(unrelated, old, old))

	removed := store.Sweep()
	assert.Equal(t, 1, removed)

	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(fresh)
	assert.NoError(t, err)
	_, err = os.Stat(unrelated)
	assert.NoError(t, err)
}
