package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngMagic is the PNG file signature.
var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestQRCodeService_GenerateStorefrontQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	qrBytes, err := svc.GenerateStorefrontQR("https://tea-house.myrocktea.com")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
	assert.True(t, bytes.HasPrefix(qrBytes, pngMagic), "output should be a PNG")
}

func TestQRCodeService_GenerateStorefrontQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := NewQRCodeService(size, "M")

		qrBytes, err := svc.GenerateStorefrontQR("https://tea-house.myrocktea.com")
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_UnknownCorrectionLevelFallsBack(t *testing.T) {
	svc := NewQRCodeService(256, "X")

	qrBytes, err := svc.GenerateStorefrontQR("https://tea-house.myrocktea.com")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(qrBytes, pngMagic))
}
