package token

import "strconv"

// sgrReduce folds a CSI `m` parameter string into an AttributeSnapshot,
// following the xterm SGR table plus the 256-colour and truecolour
// extensions (38/48;5;n and 38/48;2;r;g;b). Parameters that are not
// recognized are ignored, consistent with the tokenizer's principle
// that well-formed-but-unrecognized content is never an error.
func sgrReduce(parameter string) AttributeSnapshot {
	parts := splitParams(parameter)
	codes := make([]int, len(parts))
	valid := make([]bool, len(parts))
	for i, p := range parts {
		if p == "" {
			codes[i] = 0
			valid[i] = true
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			valid[i] = false
			continue
		}
		codes[i] = n
		valid[i] = true
	}

	var snap AttributeSnapshot
	sawReset := false

	markClearingReset := func(tag AttributeTag, value bool) {
		snap.mark(tag, value)
		if !sawReset {
			snap.clearReset()
		}
	}

	for i := 0; i < len(codes); i++ {
		if !valid[i] {
			continue
		}
		code := codes[i]
		switch {
		case code == 0:
			snap = AttributeSnapshot{}
			snap.mark(TagReset, true)
			sawReset = true
		case code == 1:
			markClearingReset(TagBold, true)
		case code == 2:
			markClearingReset(TagFaint, true)
		case code == 3:
			markClearingReset(TagItalic, true)
		case code == 4:
			markClearingReset(TagUnderlined, true)
		case code == 7:
			markClearingReset(TagInverse, true)
		case code == 22:
			markClearingReset(TagBold, false)
			markClearingReset(TagFaint, false)
		case code == 23:
			markClearingReset(TagItalic, false)
		case code == 24:
			markClearingReset(TagUnderlined, false)
		case code == 27:
			markClearingReset(TagInverse, false)
		case code >= 30 && code <= 37:
			c := StandardColor(uint8(code - 30))
			snap.Foreground = &c
			markClearingReset(TagForeground, true)
		case code == 39:
			snap.Foreground = nil
			markClearingReset(TagForeground, false)
		case code >= 40 && code <= 47:
			c := StandardColor(uint8(code - 40))
			snap.Background = &c
			markClearingReset(TagBackground, true)
		case code == 49:
			snap.Background = nil
			markClearingReset(TagBackground, false)
		case code >= 90 && code <= 97:
			c := BrightColor(uint8(code - 90))
			snap.Foreground = &c
			markClearingReset(TagForeground, true)
		case code >= 100 && code <= 107:
			c := BrightColor(uint8(code - 100))
			snap.Background = &c
			markClearingReset(TagBackground, true)
		case code == 38:
			if c, advance, ok := readExtendedColor(codes, valid, i); ok {
				snap.Foreground = &c
				markClearingReset(TagForeground, true)
				i += advance
			}
		case code == 48:
			if c, advance, ok := readExtendedColor(codes, valid, i); ok {
				snap.Background = &c
				markClearingReset(TagBackground, true)
				i += advance
			}
		default:
			// ignored
		}
	}

	return snap
}

// readExtendedColor parses the extended colour sub-parameters following
// an SGR 38 or 48 at index i in codes. It returns the decoded colour,
// how many extra elements were consumed, and whether the extension was
// well-formed. A malformed or truncated extension yields ok=false and
// must leave the attribute untouched (no partial colour, no error).
func readExtendedColor(codes []int, valid []bool, i int) (c Color, advance int, ok bool) {
	if i+1 >= len(codes) || !valid[i+1] {
		return Color{}, 0, false
	}
	switch codes[i+1] {
	case 2:
		if i+4 >= len(codes) || !valid[i+2] || !valid[i+3] || !valid[i+4] {
			return Color{}, 0, false
		}
		r := clampByte(codes[i+2])
		g := clampByte(codes[i+3])
		b := clampByte(codes[i+4])
		return RGBColor(r, g, b), 4, true
	case 5:
		if i+2 >= len(codes) || !valid[i+2] {
			return Color{}, 0, false
		}
		return PaletteColor(clampByte(codes[i+2])), 2, true
	default:
		return Color{}, 0, false
	}
}

func clampByte(n int) uint8 {
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}
