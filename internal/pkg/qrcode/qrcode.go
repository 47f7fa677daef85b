package qrcode

import (
	"strings"

	"goalkick/internal/pkg/errs"

	qr "github.com/skip2/go-qrcode"
)

const DefaultSize = 300

var ErrEmptyContent = errs.New("qr content is empty")

// PNG renders content as a square PNG with high error correction so printed
// tickets stay scannable when creased.
func PNG(content string, size int) ([]byte, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = DefaultSize
	}
	png, err := qr.Encode(content, qr.High, size)
	if err != nil {
		return nil, errs.Wrap(err, "encode qr code")
	}
	return png, nil
}
