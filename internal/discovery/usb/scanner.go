// internal/discovery/usb/scanner.go
package usb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/gousb"
	"go.uber.org/zap"

	"printer-service/internal/model"
)

// USB interface class for printers.
// Reference: http://www.usb.org/developers/defined_class
const ifaceClassPrinter = 0x07

// Scanner enumerates USB printers and surfaces them as device descriptors
// for classification. A fresh gousb context is created per scan so a failed
// enumeration cannot poison later ones.
type Scanner struct {
	logger       *zap.Logger
	knownVendors *VendorDatabase
	timeout      time.Duration
}

// Config for the USB scanner.
type Config struct {
	ScanTimeout time.Duration `json:"scan_timeout"`
}

// NewScanner creates a USB scanner.
func NewScanner(logger *zap.Logger, cfg *Config) *Scanner {
	if cfg == nil {
		cfg = &Config{ScanTimeout: 10 * time.Second}
	}

	return &Scanner{
		logger:       logger.With(zap.String("scanner", "usb")),
		knownVendors: NewVendorDatabase(),
		timeout:      cfg.ScanTimeout,
	}
}

// Scan enumerates connected USB printers.
func (s *Scanner) Scan(ctx context.Context) ([]model.DeviceDescriptor, error) {
	startTime := time.Now()
	s.logger.Info("Starting USB printer scan")

	scanCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	usbCtx := gousb.NewContext()
	defer func() {
		if err := usbCtx.Close(); err != nil {
			s.logger.Warn("Failed to close USB context", zap.Error(err))
		}
	}()

	devices, err := usbCtx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return hasPrinterInterface(desc) || s.knownVendors.IsKnownVendor(desc.Vendor)
	})
	if err != nil {
		// OpenDevices returns the devices it could open alongside the
		// error; close them before bailing out.
		for _, dev := range devices {
			dev.Close()
		}
		return nil, fmt.Errorf("failed to enumerate USB devices: %w", err)
	}

	var discovered []model.DeviceDescriptor
	for _, dev := range devices {
		select {
		case <-scanCtx.Done():
			for _, d := range devices {
				d.Close()
			}
			return nil, scanCtx.Err()
		default:
		}

		discovered = append(discovered, s.describe(dev))
		dev.Close()
	}

	s.logger.Info("USB printer scan completed",
		zap.Int("devices_found", len(discovered)),
		zap.Duration("duration", time.Since(startTime)),
	)
	return discovered, nil
}

// describe builds a descriptor from the device's string descriptors,
// falling back to the vendor database when the device reports nothing.
func (s *Scanner) describe(dev *gousb.Device) model.DeviceDescriptor {
	descriptor := model.DeviceDescriptor{
		VendorID:  uint16(dev.Desc.Vendor),
		ProductID: uint16(dev.Desc.Product),
	}

	if manufacturer, err := dev.Manufacturer(); err == nil {
		descriptor.Manufacturer = manufacturer
	} else if info := s.knownVendors.Lookup(dev.Desc.Vendor); info != nil {
		descriptor.Manufacturer = info.Name
	}

	if product, err := dev.Product(); err == nil {
		descriptor.Product = product
	}

	return descriptor
}

// hasPrinterInterface reports whether any interface advertises the USB
// printer class.
func hasPrinterInterface(desc *gousb.DeviceDesc) bool {
	for _, cfg := range desc.Configs {
		for _, iface := range cfg.Interfaces {
			for _, alt := range iface.AltSettings {
				if alt.Class == ifaceClassPrinter {
					return true
				}
			}
		}
	}
	return false
}
