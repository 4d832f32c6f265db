// pkg/template/shipping.go
package template

import "printer-service/pkg/zpl"

// ShippingData drives the shipping label layout.
type ShippingData struct {
	SenderLines    []string `json:"sender_lines"`
	RecipientLines []string `json:"recipient_lines"`
	TrackingNumber string   `json:"tracking_number"`
	ServiceLevel   string   `json:"service_level"`
	WidthDots      int      `json:"width_dots"`
	HeightDots     int      `json:"height_dots"`
	Darkness       int      `json:"darkness"`
}

// ShippingLabel renders a 4x6-style shipping label: sender block, service
// banner, recipient block, tracking barcode and a routing QR code.
func ShippingLabel(data ShippingData) []byte {
	width := data.WidthDots
	if width <= 0 {
		width = 812 // 4 inch at 203 dpi
	}
	height := data.HeightDots
	if height <= 0 {
		height = 1218 // 6 inch at 203 dpi
	}

	e := zpl.NewEncoder().
		StartFormat().
		LabelHome(0, 0).
		LabelWidth(width).
		LabelLength(height).
		MediaDarkness(data.Darkness).
		PrintSpeed(4)

	e.Comment("shipping label")

	// Sender block, small type top left.
	y := 30
	for _, line := range data.SenderLines {
		e.Text(30, y, "0", 24, line, 24)
		y += 30
	}

	// Service banner, reverse video.
	if data.ServiceLevel != "" {
		e.GraphicBox(30, y+10, width-60, 50, 50, zpl.ColorBlack, 0)
		e.FieldReversePrint()
		e.Text(50, y+20, "0", 32, data.ServiceLevel, 32)
	}
	y += 90

	e.HorizontalLine(30, y, width-60, 3)
	y += 30

	// Recipient block, large type.
	for _, line := range data.RecipientLines {
		e.Text(30, y, "0", 40, line, 40)
		y += 50
	}
	y += 30

	// Tracking barcode with interpretation line.
	e.Barcode128(30, y, data.TrackingNumber, 140)
	e.QRCode(width-180, y, data.TrackingNumber, 5, "M")

	return e.PrintQuantity(1, 0, 0).EndFormat().Bytes()
}
