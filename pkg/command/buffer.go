// pkg/command/buffer.go
package command

// Buffer accumulates encoded command tokens in issue order. Tokens are never
// reordered, deduplicated, or rejected; validation and clamping are the job
// of the encoders that feed the buffer.
type Buffer struct {
	tokens     [][]byte
	terminator []byte
}

// NewBuffer creates a buffer that finalizes by direct concatenation.
// Used by the binary (ESC/POS) and field (ZPL) encoders.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// NewTerminatedBuffer creates a buffer that appends the given terminator
// after every token on finalize. The line (TSPL) encoder uses "\r\n" so each
// statement is independently interpretable by the firmware.
func NewTerminatedBuffer(terminator string) *Buffer {
	return &Buffer{terminator: []byte(terminator)}
}

// Append adds a token to the end of the sequence. The slice is copied so
// later mutation of the caller's buffer cannot rewrite issued commands.
func (b *Buffer) Append(token []byte) {
	cp := make([]byte, len(token))
	copy(cp, token)
	b.tokens = append(b.tokens, cp)
}

// AppendString adds a textual token.
func (b *Buffer) AppendString(token string) {
	b.tokens = append(b.tokens, []byte(token))
}

// Len returns the number of appended tokens.
func (b *Buffer) Len() int {
	return len(b.tokens)
}

// Bytes finalizes the buffer into a single byte sequence without mutating
// internal state; repeated calls return equal results.
func (b *Buffer) Bytes() []byte {
	size := 0
	for _, t := range b.tokens {
		size += len(t) + len(b.terminator)
	}

	out := make([]byte, 0, size)
	for _, t := range b.tokens {
		out = append(out, t...)
		out = append(out, b.terminator...)
	}
	return out
}

// String finalizes the buffer as text.
func (b *Buffer) String() string {
	return string(b.Bytes())
}

// Clear empties the sequence. The buffer stays usable afterwards.
func (b *Buffer) Clear() {
	b.tokens = nil
}
