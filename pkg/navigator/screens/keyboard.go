package screens

// KeyAction is what pressing an on-screen key does.
type KeyAction int

const (
	KeyCharacter KeyAction = iota
	KeyBackspace
	KeyEnter
	KeySpace
	KeyShift
	KeySymbols
)

// Key is one cell of the on-screen keyboard grid.
type Key struct {
	Action KeyAction
	Lower  string
	Upper  string
	Symbol string
}

// KeyboardMode selects which value character keys type.
type KeyboardMode int

const (
	KeyboardLower KeyboardMode = iota
	KeyboardUpper
	KeyboardSymbols
)

// Keyboard is an on-screen QWERTY keyboard for controller-only devices.
// Pressing a key edits the TextField directly.
type Keyboard struct {
	field   *TextField
	rows    [][]Key
	row     int
	col     int
	shift   bool
	symbols bool
}

// NewKeyboard creates a keyboard typing into field, with the first key selected.
func NewKeyboard(field *TextField) *Keyboard {
	return &Keyboard{field: field, rows: generalLayout()}
}

func generalLayout() [][]Key {
	numbers := characterKeys([]string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"},
		[]string{"!", "@", "#", "$", "%", "^", "&", "*", "(", ")"})
	qwerty := letterKeys("qwertyuiop", []string{"`", "~", "[", "]", "\\", "|", "{", "}", ";", ":"})
	asdf := letterKeys("asdfghjkl", []string{"'", "\"", "<", ">", "?", "/", "+", "=", "_"})
	zxcv := letterKeys("zxcvbnm", []string{",", ".", "-", "€", "£", "¥", "¢"})

	return [][]Key{
		append(numbers, Key{Action: KeyBackspace}),
		qwerty,
		append(asdf, Key{Action: KeyEnter}),
		append(append([]Key{{Action: KeyShift}}, zxcv...), Key{Action: KeySymbols}),
		{{Action: KeySpace}},
	}
}

// characterKeys builds keys that type the same value in both cases.
func characterKeys(chars, symbols []string) []Key {
	keys := make([]Key, len(chars))
	for i, c := range chars {
		keys[i] = Key{Lower: c, Upper: c, Symbol: symbols[i]}
	}
	return keys
}

func letterKeys(letters string, symbols []string) []Key {
	keys := make([]Key, 0, len(letters))
	for i, r := range letters {
		keys = append(keys, Key{
			Lower:  string(r),
			Upper:  string(r - 'a' + 'A'),
			Symbol: symbols[i],
		})
	}
	return keys
}

// Rows returns the key grid, top row first.
func (k *Keyboard) Rows() [][]Key {
	return k.rows
}

// Selected returns the row and column of the selected key.
func (k *Keyboard) Selected() (row, col int) {
	return k.row, k.col
}

// SelectedKey returns the selected key.
func (k *Keyboard) SelectedKey() Key {
	return k.rows[k.row][k.col]
}

func (k *Keyboard) Mode() KeyboardMode {
	switch {
	case k.symbols:
		return KeyboardSymbols
	case k.shift:
		return KeyboardUpper
	default:
		return KeyboardLower
	}
}

// Move shifts the selection by dRow rows and dCol columns. Both axes wrap.
// Moving onto a shorter row clamps the column to its last key.
func (k *Keyboard) Move(dRow, dCol int) {
	if dRow != 0 {
		k.row = wrap(k.row+dRow, len(k.rows))
		if last := len(k.rows[k.row]) - 1; k.col > last {
			k.col = last
		}
	}
	if dCol != 0 {
		k.col = wrap(k.col+dCol, len(k.rows[k.row]))
	}
}

// Value returns the text key types in the current mode. The number row types
// its symbols while shift is held.
func (k *Keyboard) Value(key Key) string {
	switch {
	case key.Action != KeyCharacter:
		return ""
	case k.symbols:
		return key.Symbol
	case k.shift && key.Lower == key.Upper:
		return key.Symbol
	case k.shift:
		return key.Upper
	default:
		return key.Lower
	}
}

// Press activates the selected key and reports whether it was enter.
func (k *Keyboard) Press() bool {
	key := k.SelectedKey()
	switch key.Action {
	case KeyCharacter:
		k.field.Insert(k.Value(key))
	case KeyBackspace:
		k.field.Backspace()
	case KeySpace:
		k.field.Insert(" ")
	case KeyShift:
		k.shift = !k.shift
	case KeySymbols:
		k.symbols = !k.symbols
	case KeyEnter:
		return true
	}
	return false
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
