// pkg/escpos/encoder.go
package escpos

import (
	"strings"

	"printer-service/pkg/command"
)

// Align selects horizontal text alignment.
type Align int

const (
	AlignLeft   Align = 0
	AlignCenter Align = 1
	AlignRight  Align = 2
)

// Encoder builds ESC/POS byte streams for receipt printers. Every operation
// appends to an internal command buffer and returns the encoder for
// chaining; operations never fail, out-of-range parameters are clamped.
//
// Callers must issue Init first; the encoder does not enforce this and a
// session without it runs against whatever state the printer was left in.
type Encoder struct {
	buf *command.Buffer
}

// NewEncoder creates an empty ESC/POS encoder.
func NewEncoder() *Encoder {
	return &Encoder{buf: command.NewBuffer()}
}

// Init appends the reset-to-defaults sequence.
func (e *Encoder) Init() *Encoder {
	e.buf.Append(commands.Initialize)
	return e
}

// SetAlign sets horizontal alignment for following text.
func (e *Encoder) SetAlign(a Align) *Encoder {
	switch a {
	case AlignCenter:
		e.buf.Append(commands.AlignCenter)
	case AlignRight:
		e.buf.Append(commands.AlignRight)
	default:
		e.buf.Append(commands.AlignLeft)
	}
	return e
}

// SetTextSize sets width and height magnification, factors 1-8. Both are
// encoded as (n-1) packed into a single byte, width in the high nibble.
func (e *Encoder) SetTextSize(width, height int) *Encoder {
	w := command.Clamp(width-1, 0, 7)
	h := command.Clamp(height-1, 0, 7)
	e.buf.Append([]byte{gs, 0x21, byte(w<<4 | h)}) // GS ! n
	return e
}

// SetBold toggles emphasized printing.
func (e *Encoder) SetBold(enabled bool) *Encoder {
	if enabled {
		e.buf.Append(commands.BoldOn)
	} else {
		e.buf.Append(commands.BoldOff)
	}
	return e
}

// SetUnderline sets underline mode: 0 off, 1 single, 2 double.
func (e *Encoder) SetUnderline(mode int) *Encoder {
	e.buf.Append([]byte{esc, 0x2D, byte(command.Clamp(mode, 0, 2))}) // ESC - n
	return e
}

// Text appends literal text without a trailing line feed.
func (e *Encoder) Text(s string) *Encoder {
	e.buf.AppendString(s)
	return e
}

// TextLine appends literal text followed by one line feed.
func (e *Encoder) TextLine(s string) *Encoder {
	e.buf.AppendString(s)
	e.buf.Append([]byte{lf})
	return e
}

// LineFeed appends n line-feed bytes; n below 1 feeds a single line.
func (e *Encoder) LineFeed(n int) *Encoder {
	if n < 1 {
		n = 1
	}
	feed := make([]byte, n)
	for i := range feed {
		feed[i] = lf
	}
	e.buf.Append(feed)
	return e
}

// HorizontalLine prints a separator line of charCount repetitions of char.
func (e *Encoder) HorizontalLine(charCount int, char byte) *Encoder {
	if charCount < 0 {
		charCount = 0
	}
	return e.TextLine(strings.Repeat(string(char), charCount))
}

// TwoColumns prints left and right padded apart to the given column width.
// When the two strings do not fit, a single space separates them and the
// line overflows; content is never truncated.
func (e *Encoder) TwoColumns(left, right string, width int) *Encoder {
	spaces := width - len(left) - len(right)
	if spaces < 1 {
		spaces = 1
	}
	return e.TextLine(left + strings.Repeat(" ", spaces) + right)
}

// BarcodeCode128 prints a Code128 barcode with human-readable text below.
// Module width is clamped to 2-6 dots. The symbology payload carries a
// two-byte code-set prefix, which the length byte accounts for.
func (e *Encoder) BarcodeCode128(data string, height, width int) *Encoder {
	e.buf.Append([]byte{gs, 0x68, byte(command.Clamp(height, 1, 255))}) // GS h n
	e.buf.Append([]byte{gs, 0x77, byte(command.Clamp(width, 2, 6))})    // GS w n
	e.buf.Append([]byte{gs, 0x48, 0x02})                                // GS H 2: HRI below

	payload := []byte{gs, 0x6B, 0x49, byte(len(data) + 2), '{', 'B'} // GS k 73
	payload = append(payload, data...)
	e.buf.Append(payload)
	e.buf.Append([]byte{lf})
	return e
}

// QRCode prints a QR symbol. size is the module width, clamped to 1-16;
// error correction is fixed to the lowest level. The store-data command
// carries a little-endian length of payload+3.
func (e *Encoder) QRCode(data string, size int) *Encoder {
	e.buf.Append(commands.QRModel)
	e.buf.Append([]byte{gs, 0x28, 0x6B, 0x03, 0x00, 0x31, 0x43, byte(command.Clamp(size, 1, 16))})
	e.buf.Append(commands.QRCorrection)

	length := len(data) + 3
	store := []byte{gs, 0x28, 0x6B, byte(length % 256), byte(length / 256), 0x31, 0x50, 0x30}
	store = append(store, data...)
	e.buf.Append(store)

	e.buf.Append(commands.QRPrint)
	e.buf.Append([]byte{lf})
	return e
}

// CutPaper performs a full cut.
func (e *Encoder) CutPaper() *Encoder {
	e.buf.Append(commands.CutFull)
	return e
}

// CutPaperPartial performs a partial cut.
func (e *Encoder) CutPaperPartial() *Encoder {
	e.buf.Append(commands.CutPartial)
	return e
}

// FeedAndCut feeds the given number of lines, then performs a full cut.
func (e *Encoder) FeedAndCut(lines int) *Encoder {
	return e.LineFeed(lines).CutPaper()
}

// OpenCashDrawer sends the drawer-kick pulse on pin 2.
func (e *Encoder) OpenCashDrawer() *Encoder {
	e.buf.Append(commands.DrawerKick)
	return e
}

// ResetFormatting restores text size 1x1, bold off, underline off and left
// alignment, as four independent control codes in that order.
func (e *Encoder) ResetFormatting() *Encoder {
	return e.SetTextSize(1, 1).SetBold(false).SetUnderline(0).SetAlign(AlignLeft)
}

// Raw appends caller-supplied bytes untouched.
func (e *Encoder) Raw(data []byte) *Encoder {
	e.buf.Append(data)
	return e
}

// Bytes finalizes the accumulated commands. Repeated calls are stable and
// do not affect subsequent operations.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Clear empties the buffer; the encoder remains usable.
func (e *Encoder) Clear() *Encoder {
	e.buf.Clear()
	return e
}
