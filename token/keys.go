package token

import "fmt"

// CursorKey identifies a cursor-movement key reported by CSI A/B/C/D/H/F
// or the tilde-terminated page keys.
type CursorKey int

const (
	// CursorUp is the up arrow (CSI A).
	CursorUp CursorKey = iota
	// CursorDown is the down arrow (CSI B).
	CursorDown
	// CursorRight is the right arrow (CSI C).
	CursorRight
	// CursorLeft is the left arrow (CSI D).
	CursorLeft
	// CursorHome is the Home key (CSI H).
	CursorHome
	// CursorEnd is the End key (CSI F).
	CursorEnd
	// CursorPageUp is the Page Up key (CSI 5~).
	CursorPageUp
	// CursorPageDown is the Page Down key (CSI 6~).
	CursorPageDown
)

// String returns a human-readable name for the cursor key.
func (c CursorKey) String() string {
	switch c {
	case CursorUp:
		return "Up"
	case CursorDown:
		return "Down"
	case CursorRight:
		return "Right"
	case CursorLeft:
		return "Left"
	case CursorHome:
		return "Home"
	case CursorEnd:
		return "End"
	case CursorPageUp:
		return "PageUp"
	case CursorPageDown:
		return "PageDown"
	default:
		return "Unknown"
	}
}

// FunctionKeyKind discriminates the FunctionKey variants.
type FunctionKeyKind int

const (
	// FunctionKeyF identifies F1 through F12; see FunctionKey.N.
	FunctionKeyF FunctionKeyKind = iota
	// FunctionKeyInsert identifies the Insert key (CSI 2~).
	FunctionKeyInsert
	// FunctionKeyDelete identifies the Delete key (CSI 3~).
	FunctionKeyDelete
	// FunctionKeyUnknown identifies a well-formed but unrecognized
	// tilde- or SS3-terminated function key sequence.
	FunctionKeyUnknown
)

// FunctionKey represents a function key or the Insert/Delete keys.
// For FunctionKeyF, N holds the function key number (1..=12). For
// FunctionKeyUnknown, Raw holds the raw sequence text, e.g. "CSI 25~".
type FunctionKey struct {
	Kind FunctionKeyKind
	N    int
	Raw  string
}

// String returns a human-readable representation of the function key.
func (f FunctionKey) String() string {
	switch f.Kind {
	case FunctionKeyF:
		return fmt.Sprintf("F%d", f.N)
	case FunctionKeyInsert:
		return "Insert"
	case FunctionKeyDelete:
		return "Delete"
	case FunctionKeyUnknown:
		return "Unknown(" + f.Raw + ")"
	default:
		return "Unknown"
	}
}

// F returns a FunctionKey for F(n).
func F(n int) FunctionKey {
	return FunctionKey{Kind: FunctionKeyF, N: n}
}

// FunctionInsert is the Insert function key value.
var FunctionInsert = FunctionKey{Kind: FunctionKeyInsert}

// FunctionDelete is the Delete function key value.
var FunctionDelete = FunctionKey{Kind: FunctionKeyDelete}

// FunctionUnknown returns a FunctionKey for an unrecognized sequence,
// carrying the raw sequence text for diagnostics.
func FunctionUnknown(raw string) FunctionKey {
	return FunctionKey{Kind: FunctionKeyUnknown, Raw: raw}
}

// MetaKeyKind discriminates the MetaKey variants.
type MetaKeyKind int

const (
	// MetaKeyAlt identifies ESC followed by a printable byte (>= 0x20):
	// the conventional terminal encoding of Alt+<char>.
	MetaKeyAlt MetaKeyKind = iota
	// MetaKeyEscape identifies a lone trailing ESC, or ESC followed by
	// a control byte (< 0x20).
	MetaKeyEscape
)

// MetaKey represents an Alt-combination or a lone/escape-prefixed ESC.
type MetaKey struct {
	Kind MetaKeyKind
	Char rune
}

// String returns a human-readable representation of the meta key.
func (m MetaKey) String() string {
	switch m.Kind {
	case MetaKeyAlt:
		return fmt.Sprintf("Alt+%c", m.Char)
	case MetaKeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// MetaAlt returns a MetaKey for Alt+c.
func MetaAlt(c rune) MetaKey {
	return MetaKey{Kind: MetaKeyAlt, Char: c}
}

// MetaEscape is the lone-ESC / ESC-then-control MetaKey value.
var MetaEscape = MetaKey{Kind: MetaKeyEscape}
