// internal/model/device.go
package model

import "fmt"

// Protocol identifies a printer command language.
type Protocol string

const (
	ProtocolESCPOS  Protocol = "ESC_POS"
	ProtocolTSPL    Protocol = "TSPL"
	ProtocolZPL     Protocol = "ZPL"
	ProtocolUnknown Protocol = "UNKNOWN"
)

// ConnectionType represents how a printer is reached.
type ConnectionType string

const (
	ConnectionTypeUSB    ConnectionType = "USB"
	ConnectionTypeTCP    ConnectionType = "TCP"
	ConnectionTypeSerial ConnectionType = "SERIAL"
)

// DeviceDescriptor identifies a discovered printer. The core only reads the
// manufacturer and product strings, for protocol classification; everything
// else is opaque routing information for the transport layer.
type DeviceDescriptor struct {
	VendorID     uint16 `json:"vendor_id"`
	ProductID    uint16 `json:"product_id"`
	Manufacturer string `json:"manufacturer"`
	Product      string `json:"product"`
}

// ID renders the VID:PID pair the way lsusb does.
func (d DeviceDescriptor) ID() string {
	return fmt.Sprintf("%04x:%04x", d.VendorID, d.ProductID)
}

// Connection configuration structures for the transport factory.

// USBConfig addresses a USB printer by hex vendor/product id.
type USBConfig struct {
	VendorID  string `json:"vendor_id"`
	ProductID string `json:"product_id"`
	Endpoint  int    `json:"endpoint"`
}

// TCPConfig addresses a network printer, typically raw port 9100.
type TCPConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// SerialConfig addresses a serial printer.
type SerialConfig struct {
	Port     string `json:"port"`
	BaudRate int    `json:"baud_rate"`
	DataBits int    `json:"data_bits"`
	StopBits int    `json:"stop_bits"`
	Parity   string `json:"parity"`
}
