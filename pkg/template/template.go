// Package template provides fixed composite layouts built by chaining the
// encoder packages. Byte-stream order is entirely determined by call order;
// no layout engine reorders or overlaps elements.
package template

// Kind selects a label layout.
type Kind string

const (
	KindReceipt   Kind = "receipt"
	KindShipping  Kind = "shipping"
	KindProduct   Kind = "product"
	KindNutrition Kind = "nutrition"
)

// Entry describes one registered layout. Protocol names the wire language
// its encoder produces.
type Entry struct {
	Kind        Kind   `json:"kind"`
	Protocol    string `json:"protocol"`
	Description string `json:"description"`
}

// registry is ordered for listing; new layouts are added by appending rows.
var registry = []Entry{
	{Kind: KindReceipt, Protocol: "ESC_POS", Description: "Sales receipt with line items, total and QR code"},
	{Kind: KindShipping, Protocol: "ZPL", Description: "Shipping label with addresses and tracking barcode"},
	{Kind: KindProduct, Protocol: "TSPL", Description: "Product shelf label with price and SKU barcode"},
	{Kind: KindNutrition, Protocol: "ZPL", Description: "Multi-section nutrition facts label"},
}

// Lookup resolves a selector to its registry entry. Unrecognized selectors
// fall back to the product label rather than erroring.
func Lookup(selector string) Entry {
	for _, entry := range registry {
		if string(entry.Kind) == selector {
			return entry
		}
	}
	return Lookup(string(KindProduct))
}

// Kinds lists the registered layouts.
func Kinds() []Entry {
	out := make([]Entry, len(registry))
	copy(out, registry)
	return out
}
