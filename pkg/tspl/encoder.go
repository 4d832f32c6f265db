// pkg/tspl/encoder.go
package tspl

import (
	"fmt"
	"math"
	"strconv"

	"printer-service/pkg/command"
)

// DefaultDPI is the print resolution assumed by MmToDots when callers have
// no better information; 203 dpi is the common 8 dots/mm class.
const DefaultDPI = 203

// ECC levels and data-mode selectors accepted by QRCode.
const (
	EccL = "L"
	EccM = "M"
	EccQ = "Q"
	EccH = "H"

	ModeAuto   = "A"
	ModeManual = "M"
)

// Readable positions for barcode human-readable text.
const (
	ReadableNone  = 0
	ReadableBelow = 1
	ReadableAbove = 2
	ReadableBoth  = 3
)

// Encoder builds TSPL statement streams for label printers. Each operation
// appends one statement; on finalize every statement is terminated by CRLF
// so the firmware can interpret them independently. Operations never fail;
// numeric parameters outside the protocol range are clamped.
//
// Quoted string parameters are wrapped in literal double quotes without
// escaping. Content containing a double quote produces a malformed
// statement; callers own that constraint.
type Encoder struct {
	buf *command.Buffer
}

// NewEncoder creates an empty TSPL encoder.
func NewEncoder() *Encoder {
	return &Encoder{buf: command.NewTerminatedBuffer("\r\n")}
}

// MmToDots converts millimeters to printer dots at the given resolution,
// rounding half away from zero.
func MmToDots(mm float64, dpi int) int {
	return int(math.Round(mm * float64(dpi) / 25.4))
}

// statement appends one formatted statement line.
func (e *Encoder) statement(format string, args ...interface{}) *Encoder {
	e.buf.AppendString(fmt.Sprintf(format, args...))
	return e
}

// mm renders a millimeter value without a trailing fraction for whole
// numbers (100 -> "100", 12.7 -> "12.7").
func mm(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Size sets the label width and height in millimeters.
func (e *Encoder) Size(widthMM, heightMM float64) *Encoder {
	return e.statement("SIZE %s mm,%s mm", mm(widthMM), mm(heightMM))
}

// Gap sets the gap between labels and its offset, in millimeters.
func (e *Encoder) Gap(gapMM, offsetMM float64) *Encoder {
	return e.statement("GAP %s mm,%s mm", mm(gapMM), mm(offsetMM))
}

// Speed sets print speed, clamped to 1-10.
func (e *Encoder) Speed(n int) *Encoder {
	return e.statement("SPEED %d", command.Clamp(n, 1, 10))
}

// Density sets print darkness, clamped to 0-15.
func (e *Encoder) Density(n int) *Encoder {
	return e.statement("DENSITY %d", command.Clamp(n, 0, 15))
}

// Direction sets the print direction and mirroring, each 0 or 1.
func (e *Encoder) Direction(dir, mirror int) *Encoder {
	return e.statement("DIRECTION %d,%d", command.Clamp(dir, 0, 1), command.Clamp(mirror, 0, 1))
}

// Reference sets the label reference point in dots.
func (e *Encoder) Reference(x, y int) *Encoder {
	return e.statement("REFERENCE %d,%d", x, y)
}

// Offset sets the feed offset in millimeters.
func (e *Encoder) Offset(offsetMM float64) *Encoder {
	return e.statement("OFFSET %s mm", mm(offsetMM))
}

// Cls clears the printer's in-memory image buffer. This is a statement sent
// to the printer; it does not clear the encoder itself (see Clear).
func (e *Encoder) Cls() *Encoder {
	return e.statement("CLS")
}

// Text places a text field. Rotation is in degrees (0/90/180/270), the
// multipliers magnify the font in each axis.
func (e *Encoder) Text(x, y int, font string, rotation, xMulti, yMulti int, content string) *Encoder {
	return e.statement(`TEXT %d,%d,"%s",%d,%d,%d,"%s"`,
		x, y, font, rotation, xMulti, yMulti, content)
}

// Barcode places a barcode field. readable is one of the Readable
// constants; narrow and wide are the module widths in dots.
func (e *Encoder) Barcode(x, y int, codeType string, height, readable, rotation, narrow, wide int, content string) *Encoder {
	return e.statement(`BARCODE %d,%d,"%s",%d,%d,%d,%d,%d,"%s"`,
		x, y, codeType, height, command.Clamp(readable, ReadableNone, ReadableBoth),
		rotation, narrow, wide, content)
}

// Barcode128 places a Code128 barcode with text below and 2-dot modules.
func (e *Encoder) Barcode128(x, y, height int, content string) *Encoder {
	return e.Barcode(x, y, "128", height, ReadableBelow, 0, 2, 2, content)
}

// QRCode places a QR symbol. eccLevel is one of L/M/Q/H (anything else
// falls back to L); mode is A for automatic or M for manual encoding.
func (e *Encoder) QRCode(x, y int, eccLevel string, cellWidth int, mode string, rotation int, content string) *Encoder {
	switch eccLevel {
	case EccL, EccM, EccQ, EccH:
	default:
		eccLevel = EccL
	}
	if mode != ModeManual {
		mode = ModeAuto
	}
	return e.statement(`QRCODE %d,%d,%s,%d,%s,%d,"%s"`,
		x, y, eccLevel, cellWidth, mode, rotation, content)
}

// QR places a QR symbol with lowest error correction, automatic mode and no
// rotation.
func (e *Encoder) QR(x, y, cellWidth int, content string) *Encoder {
	return e.QRCode(x, y, EccL, cellWidth, ModeAuto, 0, content)
}

// Box draws a rectangle outline. The statement takes the absolute end
// corner, so width and height are translated to (x+width, y+height).
func (e *Encoder) Box(x, y, width, height, thickness int) *Encoder {
	return e.statement("BOX %d,%d,%d,%d,%d", x, y, x+width, y+height, thickness)
}

// Bar draws a filled rectangle.
func (e *Encoder) Bar(x, y, width, height int) *Encoder {
	return e.statement("BAR %d,%d,%d,%d", x, y, width, height)
}

// HorizontalLine draws a horizontal rule of the given length and thickness.
func (e *Encoder) HorizontalLine(x, y, length, thickness int) *Encoder {
	return e.Bar(x, y, length, thickness)
}

// VerticalLine draws a vertical rule of the given length and thickness.
func (e *Encoder) VerticalLine(x, y, length, thickness int) *Encoder {
	return e.Bar(x, y, thickness, length)
}

// Print prints the composed label: sets of labels, copies of each set.
func (e *Encoder) Print(sets, copies int) *Encoder {
	if sets < 1 {
		sets = 1
	}
	if copies < 1 {
		copies = 1
	}
	return e.statement("PRINT %d,%d", sets, copies)
}

// Feed advances the paper by n dots.
func (e *Encoder) Feed(n int) *Encoder {
	return e.statement("FEED %d", n)
}

// Backfeed pulls the paper back by n dots.
func (e *Encoder) Backfeed(n int) *Encoder {
	return e.statement("BACKFEED %d", n)
}

// Formfeed advances to the beginning of the next label.
func (e *Encoder) Formfeed() *Encoder {
	return e.statement("FORMFEED")
}

// Home positions to the first label after calibration.
func (e *Encoder) Home() *Encoder {
	return e.statement("HOME")
}

// Cut activates the cutter.
func (e *Encoder) Cut() *Encoder {
	return e.statement("CUT")
}

// Raw appends an arbitrary statement for commands the encoder does not
// model.
func (e *Encoder) Raw(stmt string) *Encoder {
	e.buf.AppendString(stmt)
	return e
}

// String finalizes the accumulated statements, each terminated by CRLF.
func (e *Encoder) String() string {
	return e.buf.String()
}

// Bytes finalizes the accumulated statements as raw bytes.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Clear empties the encoder's own buffer (unlike Cls, which is a printer
// statement).
func (e *Encoder) Clear() *Encoder {
	e.buf.Clear()
	return e
}
