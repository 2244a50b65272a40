package imageprocessor

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	// регистрируем декодеры форматов, которые принимает загрузка медиа
	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

var ErrUnsupportedImage = errors.New("unsupported or corrupt image")

// ImageSize - целевой прямоугольник, в который вписывается картинка
type ImageSize struct {
	Name   string
	Width  int
	Height int
}

var (
	SizeThumbnail = ImageSize{Name: "thumbnail", Width: 320, Height: 320}
	SizeCover     = ImageSize{Name: "cover", Width: 1200, Height: 630}
)

// Processor строит превью загруженных изображений
type Processor struct {
	quality int // JPEG quality (1-100)
}

func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{
		quality: quality,
	}
}

// Thumbnail декодирует изображение и возвращает уменьшенную JPEG-копию.
// Картинки меньше size не увеличиваются.
func (p *Processor) Thumbnail(reader io.Reader, size ImageSize) (*bytes.Buffer, error) {
	img, _, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	resized := p.fit(img, size.Width, size.Height)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return &buf, nil
}

// fit вписывает изображение в maxWidth x maxHeight с сохранением пропорций
func (p *Processor) fit(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= maxWidth && height <= maxHeight {
		return img
	}

	newWidth, newHeight := FitDimensions(width, height, maxWidth, maxHeight)
	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// FitDimensions считает размеры после вписывания, минимум 1x1
func FitDimensions(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	ratio := float64(width) / float64(height)
	newWidth, newHeight := maxWidth, maxHeight
	if float64(maxWidth)/float64(maxHeight) > ratio {
		newWidth = int(float64(maxHeight) * ratio)
	} else {
		newHeight = int(float64(maxWidth) / ratio)
	}
	return max(newWidth, 1), max(newHeight, 1)
}

// Dimensions возвращает размеры без полного декодирования
func Dimensions(reader io.Reader) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(reader)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	return cfg.Width, cfg.Height, nil
}
