// pkg/escpos/commands.go
package escpos

// Control bytes used across the command set.
const (
	esc = 0x1B
	gs  = 0x1D
	lf  = 0x0A
)

// commands contains the fixed ESC/POS control sequences. Parameterized
// sequences (alignment, text size, barcode setup) are built in encoder.go.
var commands = struct {
	Initialize []byte

	BoldOn       []byte
	BoldOff      []byte
	UnderlineOff []byte
	SizeNormal   []byte

	AlignLeft   []byte
	AlignCenter []byte
	AlignRight  []byte

	CutFull    []byte
	CutPartial []byte

	DrawerKick []byte

	QRModel      []byte
	QRCorrection []byte
	QRPrint      []byte
}{
	Initialize: []byte{esc, 0x40}, // ESC @

	BoldOn:       []byte{esc, 0x45, 0x01}, // ESC E 1
	BoldOff:      []byte{esc, 0x45, 0x00}, // ESC E 0
	UnderlineOff: []byte{esc, 0x2D, 0x00}, // ESC - 0
	SizeNormal:   []byte{gs, 0x21, 0x00},  // GS ! 0

	AlignLeft:   []byte{esc, 0x61, 0x00}, // ESC a 0
	AlignCenter: []byte{esc, 0x61, 0x01}, // ESC a 1
	AlignRight:  []byte{esc, 0x61, 0x02}, // ESC a 2

	CutFull:    []byte{gs, 0x56, 0x00}, // GS V 0
	CutPartial: []byte{gs, 0x56, 0x01}, // GS V 1

	DrawerKick: []byte{esc, 0x70, 0x00, 0x19, 0x19}, // ESC p 0 25 25

	QRModel:      []byte{gs, 0x28, 0x6B, 0x04, 0x00, 0x31, 0x41, 0x32, 0x00}, // GS ( k: model 2
	QRCorrection: []byte{gs, 0x28, 0x6B, 0x03, 0x00, 0x31, 0x45, 0x30},       // GS ( k: ECC level L
	QRPrint:      []byte{gs, 0x28, 0x6B, 0x03, 0x00, 0x31, 0x51, 0x30},       // GS ( k: print symbol
}
