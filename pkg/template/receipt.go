// pkg/template/receipt.go
package template

import (
	"fmt"

	"github.com/shopspring/decimal"

	"printer-service/pkg/escpos"
)

// ReceiptItem is one purchased line item.
type ReceiptItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// ReceiptData drives the sales receipt layout.
type ReceiptData struct {
	StoreName    string        `json:"store_name"`
	AddressLines []string      `json:"address_lines"`
	Items        []ReceiptItem `json:"items"`
	Currency     string        `json:"currency"`
	QRContent    string        `json:"qr_content"`
	FeedLines    int           `json:"feed_lines"`
	Width        int           `json:"width"`
}

// Receipt renders a sales receipt: store header, address, line items with
// right-aligned amounts, total, optional QR code, feed and full cut.
func Receipt(data ReceiptData) []byte {
	width := data.Width
	if width <= 0 {
		width = 48
	}
	feed := data.FeedLines
	if feed <= 0 {
		feed = 4
	}
	currency := data.Currency
	if currency == "" {
		currency = "$"
	}

	e := escpos.NewEncoder().Init()

	e.SetAlign(escpos.AlignCenter).
		SetTextSize(2, 2).
		SetBold(true).
		TextLine(data.StoreName).
		ResetFormatting()

	e.SetAlign(escpos.AlignCenter)
	for _, line := range data.AddressLines {
		e.TextLine(line)
	}
	e.SetAlign(escpos.AlignLeft)

	e.HorizontalLine(width, '-')

	total := decimal.Zero
	for _, item := range data.Items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		name := item.Name
		if qty > 1 {
			name = fmt.Sprintf("%dx %s", qty, item.Name)
		}
		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
		e.TwoColumns(name, currency+lineTotal.StringFixed(2), width)
		total = total.Add(lineTotal)
	}

	e.HorizontalLine(width, '-')
	e.SetBold(true).
		TwoColumns("TOTAL", currency+total.StringFixed(2), width).
		SetBold(false)

	if data.QRContent != "" {
		e.LineFeed(1).
			SetAlign(escpos.AlignCenter).
			QRCode(data.QRContent, 6).
			SetAlign(escpos.AlignLeft)
	}

	return e.FeedAndCut(feed).Bytes()
}
