package token

// MouseButtonKind discriminates the MouseButton variants.
type MouseButtonKind int

const (
	// MouseButtonLeft is the left mouse button.
	MouseButtonLeft MouseButtonKind = iota
	// MouseButtonMiddle is the middle mouse button.
	MouseButtonMiddle
	// MouseButtonRight is the right mouse button.
	MouseButtonRight
	// MouseButtonScrollUp is the scroll-wheel-up pseudo-button.
	MouseButtonScrollUp
	// MouseButtonScrollDown is the scroll-wheel-down pseudo-button.
	MouseButtonScrollDown
	// MouseButtonScrollLeft is the scroll-wheel-left pseudo-button.
	MouseButtonScrollLeft
	// MouseButtonScrollRight is the scroll-wheel-right pseudo-button.
	MouseButtonScrollRight
	// MouseButtonOther is any button id the decoder does not otherwise
	// name; Other carries the raw id.
	MouseButtonOther
)

// MouseButton identifies which button or wheel direction a MouseEvent
// refers to.
type MouseButton struct {
	Kind  MouseButtonKind
	Other int
}

// MouseAction identifies what happened to a MouseButton.
type MouseAction int

const (
	// MouseActionPress is a button-down event.
	MouseActionPress MouseAction = iota
	// MouseActionRelease is a button-up event.
	MouseActionRelease
	// MouseActionDrag is a button-down move event.
	MouseActionDrag
	// MouseActionScroll is a wheel event.
	MouseActionScroll
)

// MouseModifier is a bitmask of keyboard modifiers held during a mouse
// event. Multiple modifiers combine with bitwise OR.
type MouseModifier int

const (
	// MouseModShift indicates Shift was held.
	MouseModShift MouseModifier = 1 << iota
	// MouseModOption indicates Option/Meta was held.
	MouseModOption
	// MouseModControl indicates Control was held.
	MouseModControl
)

// MouseEvent is a decoded terminal mouse report, normalized from either
// the SGR-1006 or legacy X10/normal wire encoding. Column and Row are
// 1-based, passed through verbatim from the terminal.
type MouseEvent struct {
	Button    MouseButton
	Action    MouseAction
	Column    int
	Row       int
	Modifiers MouseModifier
}

// decodeMouseButtonByte decodes the Cb byte shared by both the SGR and
// legacy mouse encodings (after the legacy form's -32 bias has already
// been applied) into a button/action/modifier triple. final indicates
// which terminating byte was seen on the wire ('M' or 'm'); legacy
// reports always pass 'M' since that encoding has no release marker of
// its own beyond buttonId == 3.
func decodeMouseButtonByte(cb int, final byte) (button MouseButton, action MouseAction, mods MouseModifier) {
	if cb&0x04 != 0 {
		mods |= MouseModShift
	}
	if cb&0x08 != 0 {
		mods |= MouseModOption
	}
	if cb&0x10 != 0 {
		mods |= MouseModControl
	}

	isScroll := cb&0x40 != 0
	isDrag := cb&0x20 != 0
	buttonID := cb & 0x03

	if isScroll {
		action = MouseActionScroll
		switch buttonID {
		case 0:
			button = MouseButton{Kind: MouseButtonScrollUp}
		case 1:
			button = MouseButton{Kind: MouseButtonScrollDown}
		case 2:
			button = MouseButton{Kind: MouseButtonScrollLeft}
		case 3:
			button = MouseButton{Kind: MouseButtonScrollRight}
		}
		return button, action, mods
	}

	switch buttonID {
	case 0:
		button = MouseButton{Kind: MouseButtonLeft}
	case 1:
		button = MouseButton{Kind: MouseButtonMiddle}
	case 2:
		button = MouseButton{Kind: MouseButtonRight}
	default:
		button = MouseButton{Kind: MouseButtonOther, Other: buttonID}
	}

	switch {
	case final == 'm' || buttonID == 3:
		action = MouseActionRelease
	case isDrag:
		action = MouseActionDrag
	default:
		action = MouseActionPress
	}

	return button, action, mods
}

// decodeMouseSGR decodes an SGR-1006 mouse report `CSI < Cb ; Cx ; Cy (M|m)`
// whose three integers and terminating byte have already been parsed.
func decodeMouseSGR(cb, cx, cy int, final byte) MouseEvent {
	button, action, mods := decodeMouseButtonByte(cb, final)
	return MouseEvent{Button: button, Action: action, Column: cx, Row: cy, Modifiers: mods}
}

// decodeMouseLegacy decodes a legacy X10/normal mouse report
// `CSI M Cb Cx Cy` whose three raw bytes have already been read. Each
// byte is offset by 32 per the wire format; a byte below 32 yields a
// negative coordinate or button id, which is reported as an error
// rather than silently passed through.
func decodeMouseLegacy(rawCb, rawCx, rawCy byte) (MouseEvent, bool) {
	cb := int(rawCb) - 32
	cx := int(rawCx) - 32
	cy := int(rawCy) - 32
	if cb < 0 || cx < 0 || cy < 0 {
		return MouseEvent{}, false
	}
	button, action, mods := decodeMouseButtonByte(cb, 'M')
	return MouseEvent{Button: button, Action: action, Column: cx, Row: cy, Modifiers: mods}, true
}
