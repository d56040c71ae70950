package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"eventsnap/pkg/utils"
)

const (
	DefaultMaxDimension = 2048
	DefaultJPEGQuality  = 85

	OutputMimeType = "image/jpeg"
	OutputExt      = ".jpg"

	// maxPixels bounds the decoded canvas so a tiny file cannot expand
	// into gigabytes of pixels.
	maxPixels = 100_000_000
)

var decodableFormats = map[string]struct{}{
	"jpeg": {},
	"png":  {},
	"webp": {},
}

type Processed struct {
	Data     []byte
	Width    int
	Height   int
	MimeType string
	Ext      string
}

// ImageProcessor normalizes guest uploads: decode, auto-orient, fit inside
// maxDimension x maxDimension without upscaling, re-encode as JPEG.
type ImageProcessor struct {
	maxDimension int
	quality      int
}

func NewImageProcessor(maxDimension, quality int) *ImageProcessor {
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	return &ImageProcessor{maxDimension: maxDimension, quality: quality}
}

func (p *ImageProcessor) Process(data []byte) (*Processed, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDecode, err)
	}
	if _, ok := decodableFormats[format]; !ok {
		return nil, fmt.Errorf("%w: format %q not accepted", utils.ErrDecode, format)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > maxPixels {
		return nil, fmt.Errorf("%w: dimensions %dx%d out of range", utils.ErrDecode, cfg.Width, cfg.Height)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDecode, err)
	}

	// Fit returns a copy unchanged when the image already fits.
	img = imaging.Fit(img, p.maxDimension, p.maxDimension, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(p.quality)); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}

	bounds := img.Bounds()
	return &Processed{
		Data:     buf.Bytes(),
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		MimeType: OutputMimeType,
		Ext:      OutputExt,
	}, nil
}
