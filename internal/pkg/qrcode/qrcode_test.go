//go:build unit

package qrcode_test

import (
	"bytes"
	"image/png"
	"testing"

	"goalkick/internal/pkg/qrcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPNG(t *testing.T) {
	data, err := qrcode.PNG("NEP-A1B2C3", 0)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, qrcode.DefaultSize, img.Bounds().Dx())

	_, err = qrcode.PNG("   ", 100)
	assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
}
