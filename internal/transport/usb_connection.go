// internal/transport/usb_connection.go
package transport

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/gousb"
	"go.uber.org/zap"

	"printer-service/internal/model"
)

// USBConnection writes to a USB printer through its bulk out endpoint.
type USBConnection struct {
	config   *model.USBConfig
	usbCtx   *gousb.Context
	device   *gousb.Device
	intf     *gousb.Interface
	intfDone func()
	outEndpt *gousb.OutEndpoint
	inEndpt  *gousb.InEndpoint
	logger   *zap.Logger
	mutex    sync.RWMutex
	isOpen   bool
	stats    *Stats
}

// NewUSBConnection creates a USB connection for the given address.
func NewUSBConnection(config *model.USBConfig, logger *zap.Logger) Connection {
	return &USBConnection{
		config: config,
		logger: logger.With(
			zap.String("transport", "usb"),
			zap.String("vendor_id", config.VendorID),
			zap.String("product_id", config.ProductID),
		),
		stats: &Stats{},
	}
}

// Open locates the device by VID/PID and claims its printer interface.
func (uc *USBConnection) Open(ctx context.Context) error {
	uc.mutex.Lock()
	defer uc.mutex.Unlock()

	if uc.isOpen {
		return nil
	}

	vendorID, err := parseHexID(uc.config.VendorID)
	if err != nil {
		return fmt.Errorf("%w: invalid vendor id %q: %v", ErrConnection, uc.config.VendorID, err)
	}

	productID, err := parseHexID(uc.config.ProductID)
	if err != nil {
		return fmt.Errorf("%w: invalid product id %q: %v", ErrConnection, uc.config.ProductID, err)
	}

	uc.usbCtx = gousb.NewContext()

	device, err := uc.findAndOpenDevice(vendorID, productID)
	if err != nil {
		uc.usbCtx.Close()
		uc.usbCtx = nil
		return err
	}

	intf, done, err := device.DefaultInterface()
	if err != nil {
		device.Close()
		uc.usbCtx.Close()
		uc.usbCtx = nil
		return fmt.Errorf("%w: failed to claim interface: %v", ErrConnection, err)
	}

	outEndpt, err := intf.OutEndpoint(uc.config.Endpoint)
	if err != nil {
		done()
		device.Close()
		uc.usbCtx.Close()
		uc.usbCtx = nil
		return fmt.Errorf("%w: no out endpoint %d: %v", ErrConnection, uc.config.Endpoint, err)
	}

	inEndpt, err := intf.InEndpoint(uc.config.Endpoint)
	if err != nil {
		// Write-only printers have no in endpoint.
		uc.logger.Debug("No in endpoint found", zap.Error(err))
	}

	uc.device = device
	uc.intf = intf
	uc.intfDone = done
	uc.outEndpt = outEndpt
	uc.inEndpt = inEndpt
	uc.isOpen = true
	uc.stats.IsConnected = true
	uc.stats.LastActivity = time.Now()

	uc.logger.Info("USB connection opened")
	return nil
}

// Close releases the interface, device and USB context.
func (uc *USBConnection) Close() error {
	uc.mutex.Lock()
	defer uc.mutex.Unlock()

	if !uc.isOpen {
		return nil
	}

	if uc.intfDone != nil {
		uc.intfDone()
		uc.intfDone = nil
		uc.intf = nil
	}
	if uc.device != nil {
		uc.device.Close()
		uc.device = nil
	}
	if uc.usbCtx != nil {
		uc.usbCtx.Close()
		uc.usbCtx = nil
	}

	uc.outEndpt = nil
	uc.inEndpt = nil
	uc.isOpen = false
	uc.stats.IsConnected = false

	uc.logger.Info("USB connection closed")
	return nil
}

// IsOpen returns whether the connection is open.
func (uc *USBConnection) IsOpen() bool {
	uc.mutex.RLock()
	defer uc.mutex.RUnlock()
	return uc.isOpen && uc.outEndpt != nil
}

// Write sends finalized command bytes to the out endpoint.
func (uc *USBConnection) Write(ctx context.Context, data []byte) error {
	uc.mutex.Lock()
	defer uc.mutex.Unlock()

	if !uc.isOpen || uc.outEndpt == nil {
		return fmt.Errorf("%w: USB connection not open", ErrConnection)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	startTime := time.Now()
	n, err := uc.outEndpt.Write(data)
	if err != nil {
		uc.stats.ErrorCount++
		uc.logger.Error("USB write failed", zap.Error(err))
		return fmt.Errorf("%w: usb write: %v", ErrConnection, err)
	}
	if n != len(data) {
		uc.stats.ErrorCount++
		return fmt.Errorf("%w: incomplete write: wrote %d of %d bytes", ErrConnection, n, len(data))
	}

	uc.stats.recordWrite(n, time.Since(startTime))
	uc.logger.Debug("USB write completed", zap.Int("bytes", n))
	return nil
}

// Read reads status bytes from the in endpoint, when the device has one.
func (uc *USBConnection) Read(ctx context.Context, maxBytes int) ([]byte, error) {
	uc.mutex.Lock()
	defer uc.mutex.Unlock()

	if !uc.isOpen || uc.inEndpt == nil {
		return nil, fmt.Errorf("%w: USB connection not open or no in endpoint", ErrConnection)
	}

	buffer := make([]byte, maxBytes)

	type readResult struct {
		data []byte
		err  error
	}
	done := make(chan readResult, 1)

	go func() {
		n, err := uc.inEndpt.Read(buffer)
		if err != nil {
			done <- readResult{err: fmt.Errorf("%w: usb read: %v", ErrConnection, err)}
			return
		}
		data := make([]byte, n)
		copy(data, buffer[:n])
		done <- readResult{data: data}
	}()

	select {
	case result := <-done:
		if result.err != nil {
			uc.stats.ErrorCount++
			return nil, result.err
		}
		uc.stats.BytesRead += int64(len(result.data))
		uc.stats.OperationCount++
		uc.stats.LastActivity = time.Now()
		return result.data, nil

	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Type returns the transport kind.
func (uc *USBConnection) Type() model.ConnectionType {
	return model.ConnectionTypeUSB
}

// Ping sends a DLE EOT real-time status request.
func (uc *USBConnection) Ping(ctx context.Context) error {
	if !uc.IsOpen() {
		return fmt.Errorf("%w: USB connection not open", ErrConnection)
	}
	return uc.Write(ctx, []byte{0x10, 0x04, 0x01})
}

// parseHexID parses a hex id string, with or without a 0x prefix.
func parseHexID(hexStr string) (gousb.ID, error) {
	if len(hexStr) > 2 && hexStr[:2] == "0x" {
		hexStr = hexStr[2:]
	}
	id, err := strconv.ParseUint(hexStr, 16, 16)
	if err != nil {
		return 0, err
	}
	return gousb.ID(id), nil
}

// findAndOpenDevice opens the first device matching the configured VID/PID.
func (uc *USBConnection) findAndOpenDevice(vendorID, productID gousb.ID) (*gousb.Device, error) {
	devices, err := uc.usbCtx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return desc.Vendor == vendorID && desc.Product == productID
	})
	if err != nil {
		for _, dev := range devices {
			dev.Close()
		}
		return nil, fmt.Errorf("%w: failed to enumerate USB devices: %v", ErrConnection, err)
	}
	if len(devices) == 0 {
		return nil, fmt.Errorf("%w: USB device not found (VID %04x, PID %04x)", ErrConnection, uint16(vendorID), uint16(productID))
	}
	if len(devices) > 1 {
		for i := 1; i < len(devices); i++ {
			devices[i].Close()
		}
		uc.logger.Warn("Multiple matching USB devices found, using first one")
	}
	return devices[0], nil
}
