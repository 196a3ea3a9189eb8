package qr

import (
	"encoding/json"

	"github.com/skip2/go-qrcode"

	"lookmyshow/internal/models"
)

// GenerateBookingQR renders a booking confirmation as a 256x256 PNG QR code.
// The payload is the joined wire shape, so a scan shows the event title.
func GenerateBookingQR(b models.Booking) ([]byte, error) {
	data, err := json.Marshal(models.BookingToResponse(b))
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(string(data), qrcode.Medium, 256)
}
