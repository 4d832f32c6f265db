// internal/classify/classifier.go
package classify

import (
	"strings"

	"printer-service/internal/model"
)

// tier pairs a protocol with the keywords that select it. Tiers are
// evaluated in order and the first match wins: keyword sets overlap (a
// Zebra label printer matches "label" too), so the Zebra family is tested
// before the generic label tier, and receipt keywords come last. New
// printer families are added by appending rows.
type tier struct {
	protocol model.Protocol
	keywords []string
}

var tiers = []tier{
	{model.ProtocolZPL, []string{
		"zebra", "zdesigner", "ztc", "zd410", "zd420", "zd620",
		"zt230", "zt410", "gk420", "gx430",
	}},
	{model.ProtocolTSPL, []string{
		"tsc", "tspl", "label", "gprinter", "xprinter", "gainscha",
		"argox", "ttp-",
	}},
	{model.ProtocolESCPOS, []string{
		"epson", "star", "bixolon", "citizen", "rongta", "escpos",
		"esc/pos", "receipt", "thermal", "pos",
	}},
}

// Classify maps a device's manufacturer and product strings to the command
// language its firmware speaks, or ProtocolUnknown when nothing matches.
func Classify(d model.DeviceDescriptor) model.Protocol {
	haystack := strings.ToLower(d.Manufacturer + " " + d.Product)

	for _, t := range tiers {
		for _, kw := range t.keywords {
			if strings.Contains(haystack, kw) {
				return t.protocol
			}
		}
	}
	return model.ProtocolUnknown
}
