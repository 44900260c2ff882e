package models

import (
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the mapped result of a gateway status query
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "PAID"
	PaymentPending PaymentStatus = "PENDING"
	PaymentUnknown PaymentStatus = "UNKNOWN"
)

// PixPayer identifies the paying client on a charge request
type PixPayer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document"`
}

// PixChargeRequest is the gateway charge creation payload
type PixChargeRequest struct {
	Identifier string          `json:"identifier"`
	Amount     decimal.Decimal `json:"amount"`
	Client     PixPayer        `json:"client"`
}

// PixCharge is a funding request as returned by the gateway, or
// reconstructed from a persisted transaction's stored code and image
// fields when a pending deposit is resumed.
type PixCharge struct {
	TransactionID string   `json:"transactionId"`
	Status        string   `json:"status"`
	Order         PixOrder `json:"order"`
	Pix           PixData  `json:"pix"`
}

// PixOrder is the gateway-side order reference on a charge
type PixOrder struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// PixData carries the textual payment code and its image variants
type PixData struct {
	Code   string `json:"code"`
	Base64 string `json:"base64"`
	Image  string `json:"image"`
}

// PixGatewayError is the gateway's error payload on non-2xx responses
type PixGatewayError struct {
	StatusCode int    `json:"statusCode"`
	ErrorCode  string `json:"errorCode"`
	Message    string `json:"message"`
}

// QRImageSource resolves the displayable QR image for a charge.
// Precedence: gateway-supplied base64, gateway-supplied hosted image URL,
// a rendered image built from the textual code, then empty (unavailable).
func (c *PixCharge) QRImageSource(renderURL string) string {
	if len(c.Pix.Base64) > 20 {
		if strings.HasPrefix(c.Pix.Base64, "data:") {
			return c.Pix.Base64
		}
		return "data:image/png;base64," + c.Pix.Base64
	}
	if strings.HasPrefix(c.Pix.Image, "http") {
		return c.Pix.Image
	}
	if c.Pix.Code != "" && renderURL != "" {
		return renderURL + url.QueryEscape(c.Pix.Code)
	}
	return ""
}
