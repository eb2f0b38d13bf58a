package token

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Tokenizer is a resumable byte-level state machine that turns a stream
// of terminal bytes into Token and error values. It is not safe for
// concurrent use by multiple goroutines; different Tokenizer instances
// are fully independent.
type Tokenizer struct {
	buf byteBuffer
}

// NewTokenizer returns a Tokenizer with an empty internal buffer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Enqueue appends data to the tokenizer's internal buffer and drains as
// many tokens as possible, invoking dispatch once per emitted token or
// error in stream order. Enqueue has no return value; a partial
// sequence at the end of data simply remains buffered until a later
// Enqueue call supplies the rest. dispatch must not call Enqueue on
// this Tokenizer.
func (t *Tokenizer) Enqueue(data []byte, dispatch Dispatch) {
	t.buf.append(data)

	for {
		if t.buf.len() == 0 {
			return
		}

		b0 := t.buf.at(0)

		if ck, ok := lookupControl(b0); ok {
			dispatch(ControlToken(ck), nil)
			t.buf.drop(1)
			continue
		}

		var o outcome
		if b0 == 0x1B {
			o = t.parseEscape()
		} else {
			o = t.parseText()
		}

		if o.needMore {
			return
		}
		if o.hasErr {
			dispatch(Token{}, o.err)
		} else {
			dispatch(o.tok, nil)
		}
		t.buf.drop(o.n)
	}
}

// EnqueueString is a convenience wrapper over Enqueue for callers that
// already have a string, avoiding a redundant []byte(s) conversion at
// the call site.
func (t *Tokenizer) EnqueueString(s string, dispatch Dispatch) {
	t.Enqueue([]byte(s), dispatch)
}

// outcome is the internal result of one sub-parser invocation: it
// either asks the caller to wait for more bytes, carries a token to
// emit plus the number of bytes it consumed, or carries a recovered
// error plus the number of offending bytes to drop.
type outcome struct {
	needMore bool
	n        int
	tok      Token
	err      error
	hasErr   bool
}

func needMoreOutcome() outcome { return outcome{needMore: true} }

func tokenOutcome(n int, tok Token) outcome { return outcome{n: n, tok: tok} }

func failureOutcome(n int, err error) outcome { return outcome{n: n, err: err, hasErr: true} }

// parseText extends a span of plain-text bytes (>= 0x20, excluding ESC
// and DEL) from the buffer head and attempts to decode it as UTF-8.
func (t *Tokenizer) parseText() outcome {
	buf := &t.buf
	pos := 0
	for pos < buf.len() {
		b := buf.at(pos)
		if b < 0x20 || b == 0x7F {
			break
		}
		pos++
	}
	if pos == 0 {
		// Defensive: unreachable since the caller only reaches parseText
		// when the lead byte failed both the control-table and ESC checks.
		return needMoreOutcome()
	}

	span := buf.slice(0, pos)
	if utf8.Valid(span) {
		return tokenOutcome(pos, TextToken(string(span)))
	}
	if pos == buf.len() {
		// A multi-byte code point may be split across chunks; wait for more.
		return needMoreOutcome()
	}
	return failureOutcome(pos, InvalidUTF8Error(span))
}

// parseEscape dispatches on the byte(s) following a leading ESC.
func (t *Tokenizer) parseEscape() outcome {
	buf := &t.buf
	if buf.len() == 1 {
		// Lone trailing ESC: see SPEC_FULL.md open question 1 for why
		// this consumes immediately rather than waiting indefinitely.
		return tokenOutcome(1, MetaToken(MetaEscape))
	}

	switch buf.at(1) {
	case '[':
		return t.parseCSI()
	case 'O':
		return t.parseSS3()
	case ']':
		return t.parseOSC()
	default:
		return t.parseMeta()
	}
}

// parseMeta handles ESC followed by any byte other than '[', 'O', ']'.
func (t *Tokenizer) parseMeta() outcome {
	buf := &t.buf
	second := buf.at(1)
	if second < 0x20 {
		// Leave the control byte buffered; it tokenizes on the next pass.
		return tokenOutcome(1, MetaToken(MetaEscape))
	}
	return tokenOutcome(2, MetaToken(MetaAlt(rune(second))))
}

// parseSS3 handles ESC O <byte>, used for function keys and arrows in
// application-keypad mode. Always consumes exactly 3 bytes once enough
// are buffered.
func (t *Tokenizer) parseSS3() outcome {
	buf := &t.buf
	if buf.len() < 3 {
		return needMoreOutcome()
	}
	third := buf.at(2)
	switch third {
	case 'P':
		return tokenOutcome(3, FunctionToken(F(1)))
	case 'Q':
		return tokenOutcome(3, FunctionToken(F(2)))
	case 'R':
		return tokenOutcome(3, FunctionToken(F(3)))
	case 'S':
		return tokenOutcome(3, FunctionToken(F(4)))
	case 'A':
		return tokenOutcome(3, CursorToken(CursorUp))
	case 'B':
		return tokenOutcome(3, CursorToken(CursorDown))
	case 'C':
		return tokenOutcome(3, CursorToken(CursorRight))
	case 'D':
		return tokenOutcome(3, CursorToken(CursorLeft))
	case 'H':
		return tokenOutcome(3, CursorToken(CursorHome))
	case 'F':
		return tokenOutcome(3, CursorToken(CursorEnd))
	default:
		seq := string(buf.slice(0, 3))
		return tokenOutcome(3, FunctionToken(FunctionUnknown(seq)))
	}
}

// parseCSI handles ESC [ <parameters> <final>, including the mouse
// sub-grammars that share the CSI prefix.
func (t *Tokenizer) parseCSI() outcome {
	buf := &t.buf

	finalIdx := -1
	for i := 2; i < buf.len(); i++ {
		b := buf.at(i)
		if b >= 0x40 && b <= 0x7E {
			finalIdx = i
			break
		}
	}
	if finalIdx == -1 {
		return needMoreOutcome()
	}

	parameter := string(buf.slice(2, finalIdx))
	sequence := string(buf.slice(0, finalIdx+1))
	consumed := finalIdx + 1
	final := buf.at(finalIdx)

	if (final == 'M' || final == 'm') && strings.HasPrefix(parameter, "<") {
		return t.finishMouseSGR(parameter, final, consumed)
	}
	if final == 'M' && parameter == "" {
		return t.finishMouseLegacy(consumed)
	}

	switch final {
	case 'A':
		return tokenOutcome(consumed, CursorToken(CursorUp))
	case 'B':
		return tokenOutcome(consumed, CursorToken(CursorDown))
	case 'C':
		return tokenOutcome(consumed, CursorToken(CursorRight))
	case 'D':
		return tokenOutcome(consumed, CursorToken(CursorLeft))
	case 'H':
		return tokenOutcome(consumed, CursorToken(CursorHome))
	case 'F':
		return tokenOutcome(consumed, CursorToken(CursorEnd))
	case 'm':
		attrs := sgrReduce(parameter)
		return tokenOutcome(consumed, AnsiToken(sequence, attrs))
	case 'R':
		vals, ok := parseIntParams(parameter)
		if !ok || len(vals) != 2 {
			return failureOutcome(consumed, InvalidSequenceError("malformed cursor position report: "+sequence))
		}
		return tokenOutcome(consumed, ResponseToken(CursorPositionResponse(vals[0], vals[1])))
	case 'c':
		p := parameter
		isPrivate := false
		if strings.HasPrefix(p, ">") {
			isPrivate = true
			p = p[1:]
		}
		vals, ok := parseIntParams(p)
		if !ok {
			return failureOutcome(consumed, InvalidSequenceError("malformed device attributes report: "+sequence))
		}
		return tokenOutcome(consumed, ResponseToken(DeviceAttributesResponse(vals, isPrivate)))
	case 'n':
		vals, ok := parseIntParams(parameter)
		if !ok || len(vals) != 1 {
			return failureOutcome(consumed, InvalidSequenceError("malformed status report: "+sequence))
		}
		return tokenOutcome(consumed, ResponseToken(StatusReportResponse(vals[0])))
	case '~':
		return t.parseTildeTerminated(parameter, consumed)
	default:
		return tokenOutcome(consumed, ResponseToken(TextResponse(sequence)))
	}
}

// parseTildeTerminated interprets the integer code preceding a CSI '~'
// final byte.
func (t *Tokenizer) parseTildeTerminated(parameter string, consumed int) outcome {
	code, err := strconv.Atoi(parameter)
	if err != nil {
		return failureOutcome(consumed, InvalidSequenceError("CSI ~ with non numeric parameter"))
	}
	switch code {
	case 2:
		return tokenOutcome(consumed, FunctionToken(FunctionInsert))
	case 3:
		return tokenOutcome(consumed, FunctionToken(FunctionDelete))
	case 5:
		return tokenOutcome(consumed, CursorToken(CursorPageUp))
	case 6:
		return tokenOutcome(consumed, CursorToken(CursorPageDown))
	case 15:
		return tokenOutcome(consumed, FunctionToken(F(5)))
	case 17:
		return tokenOutcome(consumed, FunctionToken(F(6)))
	case 18:
		return tokenOutcome(consumed, FunctionToken(F(7)))
	case 19:
		return tokenOutcome(consumed, FunctionToken(F(8)))
	case 20:
		return tokenOutcome(consumed, FunctionToken(F(9)))
	case 21:
		return tokenOutcome(consumed, FunctionToken(F(10)))
	case 23:
		return tokenOutcome(consumed, FunctionToken(F(11)))
	case 24:
		return tokenOutcome(consumed, FunctionToken(F(12)))
	default:
		return tokenOutcome(consumed, FunctionToken(FunctionUnknown(fmt.Sprintf("CSI %d~", code))))
	}
}

// finishMouseSGR decodes the body of an SGR-1006 mouse report once its
// final byte has already been located.
func (t *Tokenizer) finishMouseSGR(parameter string, final byte, consumed int) outcome {
	vals, ok := parseIntParams(parameter[1:])
	if !ok || len(vals) != 3 {
		return failureOutcome(consumed, InvalidSequenceError("malformed SGR mouse report"))
	}
	ev := decodeMouseSGR(vals[0], vals[1], vals[2], final)
	return tokenOutcome(consumed, MouseToken(ev))
}

// finishMouseLegacy decodes a legacy X10/normal mouse report, which
// needs 3 more raw bytes beyond the 'M' final byte already located at
// consumed-1.
func (t *Tokenizer) finishMouseLegacy(consumed int) outcome {
	buf := &t.buf
	if buf.len() < consumed+3 {
		return needMoreOutcome()
	}
	cb := buf.at(consumed)
	cx := buf.at(consumed + 1)
	cy := buf.at(consumed + 2)
	ev, ok := decodeMouseLegacy(cb, cx, cy)
	if !ok {
		return failureOutcome(consumed+3, InvalidSequenceError("legacy mouse coordinates out of range"))
	}
	return tokenOutcome(consumed+3, MouseToken(ev))
}

// parseOSC handles ESC ] <body> (BEL | ESC \).
func (t *Tokenizer) parseOSC() outcome {
	buf := &t.buf

	for i := 2; i < buf.len(); i++ {
		b := buf.at(i)
		switch {
		case b == 0x07:
			return t.finishOSC(i, false)
		case b == 0x1B:
			if i+1 >= buf.len() {
				return needMoreOutcome()
			}
			if buf.at(i+1) == 0x5C {
				return t.finishOSC(i+1, true)
			}
			// Not a string terminator; treat as an ordinary body byte.
		}
	}
	return needMoreOutcome()
}

// finishOSC builds the response token once the terminator has been
// located at terminatorIdx (the index of the final terminator byte).
func (t *Tokenizer) finishOSC(terminatorIdx int, isST bool) outcome {
	buf := &t.buf
	consumed := terminatorIdx + 1

	var body []byte
	if isST {
		body = buf.slice(2, terminatorIdx-1)
	} else {
		body = buf.slice(2, terminatorIdx)
	}

	bodyStr := string(body)
	codeStr, data := bodyStr, ""
	if idx := strings.IndexByte(bodyStr, ';'); idx >= 0 {
		codeStr, data = bodyStr[:idx], bodyStr[idx+1:]
	}

	code, err := strconv.Atoi(codeStr)
	if err != nil {
		return failureOutcome(consumed, InvalidSequenceError("OSC with non numeric code"))
	}
	return tokenOutcome(consumed, ResponseToken(OSCResponse(code, data)))
}
