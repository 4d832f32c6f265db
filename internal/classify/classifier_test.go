package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"printer-service/internal/model"
)

func TestClassifyReceiptPrinters(t *testing.T) {
	cases := []model.DeviceDescriptor{
		{Manufacturer: "EPSON", Product: "TM-T88V"},
		{Manufacturer: "Star Micronics", Product: "TSP100"},
		{Manufacturer: "BIXOLON", Product: "SRP-350III"},
		{Manufacturer: "Generic", Product: "Thermal Receipt Printer"},
	}

	for _, descriptor := range cases {
		assert.Equal(t, model.ProtocolESCPOS, Classify(descriptor), "descriptor %v", descriptor)
	}
}

func TestClassifyLabelPrinters(t *testing.T) {
	cases := []model.DeviceDescriptor{
		{Manufacturer: "TSC", Product: "TTP-244CE"},
		{Manufacturer: "Xprinter", Product: "XP-470B"},
		{Manufacturer: "Generic", Product: "Label Printer"},
	}

	for _, descriptor := range cases {
		assert.Equal(t, model.ProtocolTSPL, Classify(descriptor), "descriptor %v", descriptor)
	}
}

func TestClassifyZebraPrinters(t *testing.T) {
	cases := []model.DeviceDescriptor{
		{Manufacturer: "Zebra Technologies", Product: "ZD420"},
		{Manufacturer: "ZDesigner", Product: "GK420d"},
	}

	for _, descriptor := range cases {
		assert.Equal(t, model.ProtocolZPL, Classify(descriptor), "descriptor %v", descriptor)
	}
}

func TestZebraKeywordsWinOverLabelKeywords(t *testing.T) {
	// Contains both a Zebra keyword and a label keyword; tier order decides.
	descriptor := model.DeviceDescriptor{Manufacturer: "Zebra Label Co", Product: "Industrial"}
	assert.Equal(t, model.ProtocolZPL, Classify(descriptor))
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	descriptor := model.DeviceDescriptor{Manufacturer: "zEbRa", Product: "zt230"}
	assert.Equal(t, model.ProtocolZPL, Classify(descriptor))
}

func TestClassifyUnknown(t *testing.T) {
	descriptor := model.DeviceDescriptor{Manufacturer: "Initech", Product: "Stapler 9000"}
	assert.Equal(t, model.ProtocolUnknown, Classify(descriptor))
}

func TestClassifyEmptyDescriptor(t *testing.T) {
	assert.Equal(t, model.ProtocolUnknown, Classify(model.DeviceDescriptor{}))
}
