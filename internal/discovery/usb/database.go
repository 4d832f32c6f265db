// internal/discovery/usb/database.go
package usb

import (
	"github.com/google/gousb"

	"printer-service/internal/model"
)

// VendorDatabase holds known printer vendors, used to fill in manufacturer
// strings when a device does not report one over USB.
type VendorDatabase struct {
	vendors map[gousb.ID]*VendorInfo
}

// VendorInfo describes one known vendor.
type VendorInfo struct {
	Name     string
	Protocol model.Protocol
}

// NewVendorDatabase creates and populates the known vendor database.
func NewVendorDatabase() *VendorDatabase {
	return &VendorDatabase{
		vendors: map[gousb.ID]*VendorInfo{
			// Receipt printer vendors
			0x04B8: {Name: "Seiko Epson Corporation", Protocol: model.ProtocolESCPOS},
			0x0519: {Name: "Star Micronics Co., Ltd.", Protocol: model.ProtocolESCPOS},
			0x1504: {Name: "BIXOLON Co., Ltd.", Protocol: model.ProtocolESCPOS},
			0x1CBE: {Name: "Citizen Systems Japan Co., Ltd.", Protocol: model.ProtocolESCPOS},

			// Label printer vendors
			0x1203: {Name: "TSC Auto ID Technology Co., Ltd.", Protocol: model.ProtocolTSPL},
			0x0A5F: {Name: "Zebra Technologies", Protocol: model.ProtocolZPL},
		},
	}
}

// Lookup returns vendor information for a vendor id, or nil when unknown.
func (db *VendorDatabase) Lookup(vendorID gousb.ID) *VendorInfo {
	return db.vendors[vendorID]
}

// IsKnownVendor checks if a vendor id is in the database.
func (db *VendorDatabase) IsKnownVendor(vendorID gousb.ID) bool {
	_, exists := db.vendors[vendorID]
	return exists
}

// AddVendor registers an additional vendor at runtime.
func (db *VendorDatabase) AddVendor(vendorID gousb.ID, info *VendorInfo) {
	db.vendors[vendorID] = info
}
