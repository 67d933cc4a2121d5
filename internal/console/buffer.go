package console

import "strings"

// LineBuffer is a bounded line of printable ASCII text.
type LineBuffer struct {
	text []byte
	cap  int
}

func NewLineBuffer(capacity int) *LineBuffer {
	return &LineBuffer{
		text: make([]byte, 0, capacity),
		cap:  capacity,
	}
}

func printable(r rune) bool {
	return r >= 32 && r <= 126
}

// Append adds r if it is printable ASCII and the buffer has room.
func (b *LineBuffer) Append(r rune) bool {
	if !printable(r) || len(b.text) >= b.cap {
		return false
	}
	b.text = append(b.text, byte(r))
	return true
}

// Set replaces the contents, dropping unprintable characters and anything
// past capacity.
func (b *LineBuffer) Set(s string) {
	b.Clear()
	for _, r := range s {
		b.Append(r)
	}
}

// Truncate removes the last character, if any.
func (b *LineBuffer) Truncate() bool {
	if len(b.text) == 0 {
		return false
	}
	b.text = b.text[:len(b.text)-1]
	return true
}

func (b *LineBuffer) Clear() {
	b.text = b.text[:0]
}

func (b *LineBuffer) String() string {
	return string(b.text)
}

func (b *LineBuffer) Len() int {
	return len(b.text)
}

func (b *LineBuffer) Cap() int {
	return b.cap
}

func (b *LineBuffer) Full() bool {
	return len(b.text) >= b.cap
}

func (b *LineBuffer) Blank() bool {
	return strings.TrimSpace(string(b.text)) == ""
}
