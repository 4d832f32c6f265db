package template

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownKinds(t *testing.T) {
	assert.Equal(t, KindReceipt, Lookup("receipt").Kind)
	assert.Equal(t, KindShipping, Lookup("shipping").Kind)
	assert.Equal(t, KindNutrition, Lookup("nutrition").Kind)
}

func TestLookupFallsBackToProductLabel(t *testing.T) {
	entry := Lookup("price-tag-deluxe")
	assert.Equal(t, KindProduct, entry.Kind)
	assert.Equal(t, "TSPL", entry.Protocol)
}

func TestKindsListsAllLayouts(t *testing.T) {
	assert.Len(t, Kinds(), 4)
}

func sampleReceipt() ReceiptData {
	return ReceiptData{
		StoreName:    "CORNER MARKET",
		AddressLines: []string{"12 Main St", "Springfield"},
		Items: []ReceiptItem{
			{Name: "Coffee", Quantity: 1, UnitPrice: decimal.RequireFromString("3.50")},
			{Name: "Bagel", Quantity: 2, UnitPrice: decimal.RequireFromString("1.25")},
			{Name: "Juice", Quantity: 1, UnitPrice: decimal.RequireFromString("2.00")},
		},
		QRContent: "https://example.com/r/1234",
		FeedLines: 4,
		Width:     32,
	}
}

func TestReceiptEndsWithFeedAndFullCut(t *testing.T) {
	out := Receipt(sampleReceipt())

	require.Greater(t, len(out), 7)
	assert.Equal(t, []byte{0x1D, 0x56, 0x00}, out[len(out)-3:])
	assert.Equal(t, []byte{0x0A, 0x0A, 0x0A, 0x0A}, out[len(out)-7:len(out)-3])
}

func TestReceiptTotalsLineItems(t *testing.T) {
	out := string(Receipt(sampleReceipt()))

	// 3.50 + 2*1.25 + 2.00
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "$8.00")
	assert.Contains(t, out, "2x Bagel")
	assert.Contains(t, out, "$2.50")
}

func TestReceiptStartsWithInitialize(t *testing.T) {
	out := Receipt(sampleReceipt())
	assert.Equal(t, []byte{0x1B, 0x40}, out[:2])
}

func TestProductLabelStatements(t *testing.T) {
	out := string(ProductLabel(ProductData{
		Name:  "Green Tea",
		SKU:   "GT-400",
		Price: decimal.RequireFromString("4.99"),
	}))

	assert.True(t, strings.HasPrefix(out, "SIZE 57 mm,32 mm\r\n"))
	assert.Contains(t, out, "CLS\r\n")
	assert.Contains(t, out, `"Green Tea"`)
	assert.Contains(t, out, `"$4.99"`)
	assert.Contains(t, out, `"GT-400"`)
	assert.True(t, strings.HasSuffix(out, "PRINT 1,1\r\n"))
}

func TestProductLabelOmitsZeroPrice(t *testing.T) {
	out := string(ProductLabel(ProductData{Name: "Sample", SKU: "S-1"}))
	assert.NotContains(t, out, "$0.00")
}

func TestShippingLabelFraming(t *testing.T) {
	out := string(ShippingLabel(ShippingData{
		SenderLines:    []string{"Acme Co", "1 Depot Rd"},
		RecipientLines: []string{"Jo Doe", "99 Elm St"},
		TrackingNumber: "1Z999AA10123456784",
		ServiceLevel:   "PRIORITY",
	}))

	assert.True(t, strings.HasPrefix(out, "^XA"))
	assert.True(t, strings.HasSuffix(out, "^XZ"))
	assert.Contains(t, out, "^FD1Z999AA10123456784^FS")
	assert.Contains(t, out, "^FDPRIORITY^FS")
	// Sender precedes recipient in the byte stream.
	assert.Less(t, strings.Index(out, "Acme Co"), strings.Index(out, "Jo Doe"))
}

func TestNutritionLabelSections(t *testing.T) {
	out := string(NutritionLabel(NutritionData{
		ProductName: "Granola",
		ServingSize: "55g",
		Servings:    "8",
		Calories:    "210",
		Facts: []NutritionFact{
			{Name: "Total Fat", Amount: "6g", DailyValue: "8%"},
			{Name: "Sodium", Amount: "15mg", DailyValue: "1%"},
		},
		Footnote: "Percent daily values are based on a 2000 calorie diet.",
	}))

	assert.True(t, strings.HasPrefix(out, "^XA"))
	assert.True(t, strings.HasSuffix(out, "^XZ"))
	assert.Contains(t, out, "Nutrition Facts")
	assert.Contains(t, out, "^FDCalories^FS")
	assert.Contains(t, out, "Total Fat 6g")
	assert.Contains(t, out, "^FB")
	// Title precedes the fact rows.
	assert.Less(t, strings.Index(out, "Nutrition Facts"), strings.Index(out, "Sodium"))
}

func TestTemplatesAreDeterministic(t *testing.T) {
	first := Receipt(sampleReceipt())
	second := Receipt(sampleReceipt())
	assert.True(t, bytes.Equal(first, second))
}
