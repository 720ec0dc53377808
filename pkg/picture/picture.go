package picture

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// MaxWidth is the widest output ResizeJPEG is asked for.
const MaxWidth = 2048

const (
	sharpenSigma = 1.0
	jpegQuality  = 90
)

// ResizeJPEG decodes img, scales it down to width (keeping the aspect ratio,
// 0 keeps the original size), sharpens it and encodes it as JPEG.
// Images are never scaled up.
func ResizeJPEG(img []byte, width int) ([]byte, error) {
	if len(img) == 0 {
		return nil, errors.New("empty image")
	}
	src, err := imaging.Decode(bytes.NewReader(img), imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrap(err, "decode image")
	}

	var dst image.Image = src
	if width > 0 && width < src.Bounds().Dx() {
		dst = imaging.Resize(dst, width, 0, imaging.Lanczos)
	}
	dst = imaging.Sharpen(dst, sharpenSigma)

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, dst, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, errors.Wrap(err, "encode image")
	}
	return buf.Bytes(), nil
}
