package token

import "fmt"

// TokenKind discriminates the Token variants. Exactly one group of the
// Token struct's payload fields is meaningful for a given Kind.
type TokenKind int

const (
	// TokenText carries a run of decoded printable/UTF-8 text.
	TokenText TokenKind = iota
	// TokenControl carries a single C0/DEL control character.
	TokenControl
	// TokenCursor carries a cursor-movement key.
	TokenCursor
	// TokenFunction carries a function key, Insert, or Delete.
	TokenFunction
	// TokenMeta carries an Alt-combination or a lone/escape-prefixed ESC.
	TokenMeta
	// TokenResponse carries a terminal-to-host response or unrecognized
	// CSI fallback.
	TokenResponse
	// TokenAnsi carries an SGR sequence's raw bytes and decoded attributes.
	TokenAnsi
	// TokenMouse carries a decoded mouse event.
	TokenMouse
)

// AnsiFormat pairs the exact bytes of an SGR sequence, decoded as UTF-8,
// with the AttributeSnapshot it reduces to. Sequence is preserved
// verbatim so the token can be replayed byte-for-byte.
type AnsiFormat struct {
	Sequence   string
	Attributes AttributeSnapshot
}

// Token is the tagged union emitted by the Tokenizer: plain text,
// C0 and DEL controls, cursor/function/meta keys, terminal responses, SGR
// attribute changes, and mouse events. Token values are immutable once
// dispatched and own no resources.
type Token struct {
	Kind     TokenKind
	Text     string
	Control  ControlKey
	Cursor   CursorKey
	Function FunctionKey
	Meta     MetaKey
	Response TerminalResponse
	Ansi     AnsiFormat
	Mouse    MouseEvent
}

// String returns a human-readable representation of the token.
func (t Token) String() string {
	switch t.Kind {
	case TokenText:
		return fmt.Sprintf("Text(%q)", t.Text)
	case TokenControl:
		return fmt.Sprintf("Control(%s)", t.Control)
	case TokenCursor:
		return fmt.Sprintf("Cursor(%s)", t.Cursor)
	case TokenFunction:
		return fmt.Sprintf("Function(%s)", t.Function)
	case TokenMeta:
		return fmt.Sprintf("Meta(%s)", t.Meta)
	case TokenResponse:
		return fmt.Sprintf("Response(%s)", t.Response)
	case TokenAnsi:
		return fmt.Sprintf("Ansi(%q)", t.Ansi.Sequence)
	case TokenMouse:
		return fmt.Sprintf("Mouse(%+v)", t.Mouse)
	default:
		return "Unknown"
	}
}

// TextToken builds a TokenText.
func TextToken(s string) Token { return Token{Kind: TokenText, Text: s} }

// ControlToken builds a TokenControl.
func ControlToken(c ControlKey) Token { return Token{Kind: TokenControl, Control: c} }

// CursorToken builds a TokenCursor.
func CursorToken(c CursorKey) Token { return Token{Kind: TokenCursor, Cursor: c} }

// FunctionToken builds a TokenFunction.
func FunctionToken(f FunctionKey) Token { return Token{Kind: TokenFunction, Function: f} }

// MetaToken builds a TokenMeta.
func MetaToken(m MetaKey) Token { return Token{Kind: TokenMeta, Meta: m} }

// ResponseToken builds a TokenResponse.
func ResponseToken(r TerminalResponse) Token { return Token{Kind: TokenResponse, Response: r} }

// AnsiToken builds a TokenAnsi.
func AnsiToken(sequence string, attrs AttributeSnapshot) Token {
	return Token{Kind: TokenAnsi, Ansi: AnsiFormat{Sequence: sequence, Attributes: attrs}}
}

// MouseToken builds a TokenMouse.
func MouseToken(m MouseEvent) Token { return Token{Kind: TokenMouse, Mouse: m} }

// Dispatch is the callback shape Tokenizer.Enqueue invokes once per
// emitted token or error, in stream order. Exactly one of t, err is
// meaningful per call: err is non-nil for a recovered parse error, nil
// otherwise. A Dispatch must not call Enqueue on the same Tokenizer.
type Dispatch func(t Token, err error)
