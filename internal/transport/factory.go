// internal/transport/factory.go
package transport

import (
	"fmt"

	"go.uber.org/zap"

	"printer-service/internal/model"
)

// Create builds a connection for the given transport type from a loosely
// typed config map, as it arrives from JSON request bodies.
func Create(connectionType model.ConnectionType, config map[string]interface{}, logger *zap.Logger) (Connection, error) {
	switch connectionType {
	case model.ConnectionTypeUSB:
		return createUSB(config, logger)
	case model.ConnectionTypeTCP:
		return createTCP(config, logger)
	case model.ConnectionTypeSerial:
		return createSerial(config, logger)
	default:
		return nil, fmt.Errorf("unsupported connection type: %s", connectionType)
	}
}

func createUSB(config map[string]interface{}, logger *zap.Logger) (Connection, error) {
	usbConfig := &model.USBConfig{
		Endpoint: 1,
	}

	if vendorID, ok := config["vendor_id"].(string); ok {
		usbConfig.VendorID = vendorID
	} else {
		return nil, fmt.Errorf("USB vendor_id is required")
	}

	if productID, ok := config["product_id"].(string); ok {
		usbConfig.ProductID = productID
	} else {
		return nil, fmt.Errorf("USB product_id is required")
	}

	if endpoint, ok := config["endpoint"]; ok {
		usbConfig.Endpoint = toInt(endpoint, usbConfig.Endpoint)
	}

	logger.Info("Creating USB transport",
		zap.String("vendor_id", usbConfig.VendorID),
		zap.String("product_id", usbConfig.ProductID),
	)

	return NewUSBConnection(usbConfig, logger), nil
}

func createTCP(config map[string]interface{}, logger *zap.Logger) (Connection, error) {
	tcpConfig := &model.TCPConfig{
		Port: 9100, // Raw printing port
	}

	if host, ok := config["host"].(string); ok {
		tcpConfig.Host = host
	} else {
		return nil, fmt.Errorf("TCP host is required")
	}

	if port, ok := config["port"]; ok {
		tcpConfig.Port = toInt(port, tcpConfig.Port)
	}
	if tcpConfig.Port < 1 || tcpConfig.Port > 65535 {
		return nil, fmt.Errorf("invalid port number: %d", tcpConfig.Port)
	}

	logger.Info("Creating TCP transport",
		zap.String("host", tcpConfig.Host),
		zap.Int("port", tcpConfig.Port),
	)

	return NewTCPConnection(tcpConfig, logger), nil
}

func createSerial(config map[string]interface{}, logger *zap.Logger) (Connection, error) {
	serialConfig := &model.SerialConfig{
		BaudRate: 9600,
		DataBits: 8,
		StopBits: 1,
		Parity:   "none",
	}

	if port, ok := config["port"].(string); ok {
		serialConfig.Port = port
	} else {
		return nil, fmt.Errorf("serial port is required")
	}

	if baudRate, ok := config["baud_rate"]; ok {
		serialConfig.BaudRate = toInt(baudRate, serialConfig.BaudRate)
	}
	if dataBits, ok := config["data_bits"]; ok {
		serialConfig.DataBits = toInt(dataBits, serialConfig.DataBits)
	}
	if stopBits, ok := config["stop_bits"]; ok {
		serialConfig.StopBits = toInt(stopBits, serialConfig.StopBits)
	}
	if parity, ok := config["parity"].(string); ok {
		serialConfig.Parity = parity
	}

	logger.Info("Creating serial transport",
		zap.String("port", serialConfig.Port),
		zap.Int("baud_rate", serialConfig.BaudRate),
	)

	return NewSerialConnection(serialConfig, logger), nil
}

// toInt handles the float64 that encoding/json produces for numbers.
func toInt(v interface{}, fallback int) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return fallback
	}
}
