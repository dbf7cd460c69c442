package currencyfield

// buffer is the rune-addressed text cell behind the widget. It satisfies
// binding.CaretField; caret offsets count runes, matching the controller's
// contract.
type buffer struct {
	runes []rune
	caret int
}

func (b *buffer) Text() string { return string(b.runes) }

// SetText replaces the content and drops the caret to the end, the same
// reset a DOM input performs on value assignment. The controller restores
// the caret afterwards.
func (b *buffer) SetText(s string) {
	b.runes = []rune(s)
	b.caret = len(b.runes)
}

func (b *buffer) Caret() int { return b.caret }

func (b *buffer) SetCaret(n int) {
	if n < 0 {
		n = 0
	}
	if n > len(b.runes) {
		n = len(b.runes)
	}
	b.caret = n
}

func (b *buffer) insert(rs []rune) {
	if len(rs) == 0 {
		return
	}
	out := make([]rune, 0, len(b.runes)+len(rs))
	out = append(out, b.runes[:b.caret]...)
	out = append(out, rs...)
	out = append(out, b.runes[b.caret:]...)
	b.runes = out
	b.caret += len(rs)
}

func (b *buffer) deleteBefore() bool {
	if b.caret == 0 {
		return false
	}
	b.runes = append(b.runes[:b.caret-1], b.runes[b.caret:]...)
	b.caret--
	return true
}

func (b *buffer) deleteAt() bool {
	if b.caret >= len(b.runes) {
		return false
	}
	b.runes = append(b.runes[:b.caret], b.runes[b.caret+1:]...)
	return true
}

func (b *buffer) moveLeft()  { b.SetCaret(b.caret - 1) }
func (b *buffer) moveRight() { b.SetCaret(b.caret + 1) }
func (b *buffer) moveHome()  { b.caret = 0 }
func (b *buffer) moveEnd()   { b.caret = len(b.runes) }
