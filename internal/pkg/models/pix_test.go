package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const renderURL = "https://api.qrserver.com/v1/create-qr-code/?size=220x220&data="

func TestQRImageSource_PrefersEmbeddedBase64(t *testing.T) {
	charge := &PixCharge{Pix: PixData{
		Base64: "iVBORw0KGgoAAAANSUhEUgAAAAEAAAAB",
		Image:  "https://cdn.example.com/qr.png",
		Code:   "000201pixcode",
	}}

	assert.Equal(t, "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAAB",
		charge.QRImageSource(renderURL))
}

func TestQRImageSource_KeepsExistingDataURI(t *testing.T) {
	charge := &PixCharge{Pix: PixData{
		Base64: "data:image/png;base64,iVBORw0KGgoAAAANSUhEUg",
	}}

	assert.Equal(t, "data:image/png;base64,iVBORw0KGgoAAAANSUhEUg",
		charge.QRImageSource(renderURL))
}

func TestQRImageSource_FallsBackToHostedImage(t *testing.T) {
	charge := &PixCharge{Pix: PixData{
		Base64: "short",
		Image:  "https://cdn.example.com/qr.png",
		Code:   "000201pixcode",
	}}

	assert.Equal(t, "https://cdn.example.com/qr.png", charge.QRImageSource(renderURL))
}

func TestQRImageSource_RendersFromCode(t *testing.T) {
	charge := &PixCharge{Pix: PixData{Code: "000201 pix&code"}}

	assert.Equal(t, renderURL+"000201+pix%26code", charge.QRImageSource(renderURL))
}

func TestQRImageSource_NothingAvailable(t *testing.T) {
	charge := &PixCharge{}

	assert.Equal(t, "", charge.QRImageSource(renderURL))
}
