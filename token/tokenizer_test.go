package token

import (
	"reflect"
	"testing"
)

// collect runs Enqueue once over data and returns the ordered list of
// (token, err) results the dispatch callback observed.
type collected struct {
	tok Token
	err error
}

func collect(t *Tokenizer, data []byte) []collected {
	var out []collected
	t.Enqueue(data, func(tok Token, err error) {
		out = append(out, collected{tok, err})
	})
	return out
}

func TestTokenizerScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []Token
	}{
		{"plain text", []byte("hello"), []Token{TextToken("hello")}},
		{"bel control", []byte{0x07}, []Token{ControlToken(ControlBEL)}},
		{"lone escape", []byte{0x1B}, []Token{MetaToken(MetaEscape)}},
		{"escape then control", []byte{0x1B, 0x01}, []Token{MetaToken(MetaEscape), ControlToken(ControlSOH)}},
		{"cursor up", []byte{0x1B, '[', 'A'}, []Token{CursorToken(CursorUp)}},
		{"f5 tilde", []byte{0x1B, '[', '1', '5', '~'}, []Token{FunctionToken(F(5))}},
		{"f1 ss3", []byte{0x1B, 'O', 'P'}, []Token{FunctionToken(F(1))}},
		{"alt x", []byte{0x1B, 'x'}, []Token{MetaToken(MetaAlt('x'))}},
		{
			"cursor position response",
			[]byte("\x1b[12;45R"),
			[]Token{ResponseToken(CursorPositionResponse(12, 45))},
		},
		{
			"osc title",
			[]byte("\x1b]0;Title\x07"),
			[]Token{ResponseToken(OSCResponse(0, "Title"))},
		},
		{
			"sgr mouse press",
			[]byte("\x1b[<0;10;5M"),
			[]Token{MouseToken(MouseEvent{Button: MouseButton{Kind: MouseButtonLeft}, Action: MouseActionPress, Column: 10, Row: 5})},
		},
		{
			"sgr mouse release",
			[]byte("\x1b[<0;10;5m"),
			[]Token{MouseToken(MouseEvent{Button: MouseButton{Kind: MouseButtonLeft}, Action: MouseActionRelease, Column: 10, Row: 5})},
		},
		{
			"sgr mouse drag with modifiers",
			[]byte("\x1b[<44;12;8M"),
			[]Token{MouseToken(MouseEvent{
				Button:    MouseButton{Kind: MouseButtonLeft},
				Action:    MouseActionDrag,
				Column:    12,
				Row:       8,
				Modifiers: MouseModShift | MouseModOption,
			})},
		},
		{
			"sgr mouse scroll",
			[]byte("\x1b[<64;22;18M"),
			[]Token{MouseToken(MouseEvent{Button: MouseButton{Kind: MouseButtonScrollUp}, Action: MouseActionScroll, Column: 22, Row: 18})},
		},
		{
			"legacy mouse",
			[]byte{0x1B, '[', 'M', 0x20, 0x2A, 0x25},
			[]Token{MouseToken(MouseEvent{Button: MouseButton{Kind: MouseButtonLeft}, Action: MouseActionPress, Column: 10, Row: 5})},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tok := NewTokenizer()
			got := collect(tok, tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d results, want %d: %+v", len(got), len(tc.want), got)
			}
			for i, w := range tc.want {
				if got[i].err != nil {
					t.Fatalf("result %d: unexpected error %v", i, got[i].err)
				}
				if !reflect.DeepEqual(got[i].tok, w) {
					t.Errorf("result %d = %+v, want %+v", i, got[i].tok, w)
				}
			}
		})
	}
}

func TestTokenizerSGRProjection(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Attribute
	}{
		{
			"bold red foreground",
			"\x1b[1;31m",
			[]Attribute{
				{Kind: AttributeBold, Bool: true},
				{Kind: AttributeForeground, Color: StandardColor(1)},
			},
		},
		{
			"reset dominance with trailing foreground",
			"\x1b[;31m",
			[]Attribute{
				{Kind: AttributeReset},
				{Kind: AttributeForeground, Color: StandardColor(1)},
			},
		},
		{
			"bold then palette via extended colour",
			"\x1b[1;38;5;12m",
			[]Attribute{
				{Kind: AttributeBold, Bool: true},
				{Kind: AttributeForeground, Color: PaletteColor(12)},
			},
		},
		{
			"bold and faint disabled",
			"\x1b[22m",
			[]Attribute{
				{Kind: AttributeBold, Bool: false},
				{Kind: AttributeFaint, Bool: false},
			},
		},
		{
			"foreground default",
			"\x1b[39m",
			[]Attribute{{Kind: AttributeForegroundDefault}},
		},
		{
			"background default",
			"\x1b[49m",
			[]Attribute{{Kind: AttributeBackgroundDefault}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tok := NewTokenizer()
			got := collect(tok, []byte(tc.input))
			if len(got) != 1 {
				t.Fatalf("got %d results, want 1: %+v", len(got), got)
			}
			if got[0].err != nil {
				t.Fatalf("unexpected error: %v", got[0].err)
			}
			if got[0].tok.Kind != TokenAnsi {
				t.Fatalf("got kind %v, want TokenAnsi", got[0].tok.Kind)
			}
			if got[0].tok.Ansi.Sequence != tc.input {
				t.Errorf("sequence = %q, want %q", got[0].tok.Ansi.Sequence, tc.input)
			}
			proj := Project(got[0].tok.Ansi.Attributes)
			if !reflect.DeepEqual(proj, tc.want) {
				t.Errorf("projection = %+v, want %+v", proj, tc.want)
			}
		})
	}
}

func TestTokenizerChunking(t *testing.T) {
	// Split an SGR sequence mid-parameter; expect a single Ansi token
	// identical to feeding it all at once.
	tok := NewTokenizer()
	var got []collected
	dispatch := func(t Token, err error) { got = append(got, collected{t, err}) }

	tok.Enqueue([]byte("\x1b[1;"), dispatch)
	if len(got) != 0 {
		t.Fatalf("expected no tokens before the sequence completes, got %+v", got)
	}
	tok.Enqueue([]byte("31m"), dispatch)

	whole := NewTokenizer()
	var want []collected
	whole.Enqueue([]byte("\x1b[1;31m"), func(t Token, err error) { want = append(want, collected{t, err}) })

	if !reflect.DeepEqual(got, want) {
		t.Errorf("chunked = %+v, want %+v", got, want)
	}
}

func TestTokenizerEmptyEnqueueProducesNothing(t *testing.T) {
	tok := NewTokenizer()
	got := collect(tok, nil)
	if len(got) != 0 {
		t.Errorf("expected no results for empty input, got %+v", got)
	}
}

func TestTokenizerInvalidUTF8Recovers(t *testing.T) {
	tok := NewTokenizer()
	// 0xFF is never valid UTF-8; terminate the run with a control byte
	// so the tokenizer knows no more bytes are coming to complete it.
	got := collect(tok, []byte{0xFF, 0xFE, 0x07})
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2: %+v", len(got), got)
	}
	if got[0].err == nil {
		t.Fatalf("expected an error for the invalid run, got token %+v", got[0].tok)
	}
	if e, ok := got[0].err.(*Error); !ok || e.Kind != ErrorInvalidUTF8 {
		t.Errorf("error = %v, want ErrorInvalidUTF8", got[0].err)
	}
	if got[1].tok.Kind != TokenControl || got[1].tok.Control != ControlBEL {
		t.Errorf("second result = %+v, want Control(BEL)", got[1].tok)
	}
}

func TestTokenizerInvalidUTF8WaitsForMoreBytes(t *testing.T) {
	tok := NewTokenizer()
	// A lead byte for a 2-byte code point, with no continuation yet.
	got := collect(tok, []byte{0xC2})
	if len(got) != 0 {
		t.Fatalf("expected NeedMore (no results) for a truncated lead byte, got %+v", got)
	}
	got = collect(tok, []byte{0xA9}) // completes U+00A9 (copyright sign)
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1: %+v", len(got), got)
	}
	if got[0].err != nil {
		t.Fatalf("unexpected error: %v", got[0].err)
	}
	if got[0].tok.Text != "\u00a9" {
		t.Errorf("text = %q, want copyright sign", got[0].tok.Text)
	}
}

func TestTokenizerTildeNonNumericIsInvalidSequence(t *testing.T) {
	tok := NewTokenizer()
	// '?' is a CSI parameter byte (0x20-0x3F), so '~' is the final byte
	// and the parameter "?" fails to parse as an integer.
	got := collect(tok, []byte("\x1b[?~"))
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1: %+v", len(got), got)
	}
	e, ok := got[0].err.(*Error)
	if !ok || e.Kind != ErrorInvalidSequence {
		t.Errorf("error = %v, want ErrorInvalidSequence", got[0].err)
	}
}

func TestTokenizerUnknownCSIFinalIsTextResponse(t *testing.T) {
	tok := NewTokenizer()
	got := collect(tok, []byte("\x1b[5q"))
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1: %+v", len(got), got)
	}
	if got[0].err != nil {
		t.Fatalf("unrecognized-but-well-formed CSI must never error, got %v", got[0].err)
	}
	if got[0].tok.Response.Kind != ResponseText || got[0].tok.Response.Raw != "\x1b[5q" {
		t.Errorf("response = %+v, want Text(\"\\x1b[5q\")", got[0].tok.Response)
	}
}

func TestTokenizerDeviceAttributes(t *testing.T) {
	tok := NewTokenizer()
	got := collect(tok, []byte("\x1b[>1;10;0c"))
	if len(got) != 1 || got[0].err != nil {
		t.Fatalf("got %+v", got)
	}
	resp := got[0].tok.Response
	if resp.Kind != ResponseDeviceAttributes || !resp.IsPrivate {
		t.Fatalf("response = %+v, want private device attributes", resp)
	}
	if !reflect.DeepEqual(resp.Values, []int{1, 10, 0}) {
		t.Errorf("values = %v, want [1 10 0]", resp.Values)
	}
}
