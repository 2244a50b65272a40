package integration_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"contest_backend/internal/services/dto"
	"contest_backend/test/helpers"
)

// errorBody - конверт ответа об ошибке
type errorBody struct {
	Error struct {
		Code    string            `json:"code"`
		Domain  string            `json:"domain"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

type page[T any] struct {
	Data []T                `json:"data"`
	Meta dto.PaginationMeta `json:"meta"`
}

func decodeError(t *testing.T, body string) errorBody {
	t.Helper()
	var e errorBody
	helpers.DecodeJSON(t, body, &e)
	return e
}

// pngImage - валидная PNG-картинка для загрузок
func pngImage(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Не удалось закодировать PNG: %v", err)
	}
	return buf.Bytes()
}
