package spritetext

import (
	"fmt"
	"image"
	_ "image/png" // PNG atlases
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // BMP atlases
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP atlases
)

// LoadAtlasImage reads and decodes an atlas image file into straight-alpha
// NRGBA.
// A missing or undecodable file returns an error wrapping ErrAtlasLoad;
// callers must not start rendering without a valid atlas.
func LoadAtlasImage(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAtlasLoad, err)
	}
	defer f.Close()

	img, err := DecodeAtlasImage(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("atlas loaded", "path", path, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return img, nil
}

// DecodeAtlasImage decodes an atlas image from r into NRGBA with its
// origin at (0, 0). Alpha is not premultiplied, matching the
// SRC_ALPHA, ONE_MINUS_SRC_ALPHA blend. Rows are kept top to bottom: row 0
// is the top of the sheet and maps to v = 0.
func DecodeAtlasImage(r io.Reader) (*image.NRGBA, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrAtlasLoad, err)
	}

	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: empty %s image", ErrAtlasLoad, format)
	}

	if nrgba, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return nrgba, nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(dst, image.Point{}, src, b, draw.Src, nil)
	return dst, nil
}

// CheckAtlasImage reports whether img has the pixel size m describes.
// A mismatch is not fatal: glyphs render, but from the wrong pixels.
func CheckAtlasImage(img image.Image, m FontAtlasMetrics) error {
	b := img.Bounds()
	if float32(b.Dx()) != m.SheetWidth || float32(b.Dy()) != m.SheetHeight {
		return fmt.Errorf("%w: image %dx%d, metrics %vx%v",
			ErrAtlasMismatch, b.Dx(), b.Dy(), m.SheetWidth, m.SheetHeight)
	}
	return nil
}
