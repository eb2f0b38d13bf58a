package token

// AttributeKind discriminates the Attribute variants produced by Project.
type AttributeKind int

const (
	// AttributeReset marks that the snapshot originated from an SGR 0.
	AttributeReset AttributeKind = iota
	// AttributeBold carries Bool for SGR 1/22.
	AttributeBold
	// AttributeFaint carries Bool for SGR 2/22.
	AttributeFaint
	// AttributeItalic carries Bool for SGR 3/23.
	AttributeItalic
	// AttributeUnderlined carries Bool for SGR 4/24.
	AttributeUnderlined
	// AttributeInverse carries Bool for SGR 7/27.
	AttributeInverse
	// AttributeForeground carries Color for a concrete foreground colour.
	AttributeForeground
	// AttributeForegroundDefault marks SGR 39 (foreground reset to default).
	AttributeForegroundDefault
	// AttributeBackground carries Color for a concrete background colour.
	AttributeBackground
	// AttributeBackgroundDefault marks SGR 49 (background reset to default).
	AttributeBackgroundDefault
)

// Attribute is one semantic change produced by projecting an
// AttributeSnapshot, suitable for replaying the SGR sequence's effects
// without re-parsing it.
type Attribute struct {
	Kind  AttributeKind
	Bool  bool
	Color Color
}

// projectionOrder is the fixed, deterministic tag order AttributeProjector
// walks: reset, bold, faint, italic, underlined, inverse, foreground,
// background. This order is significant only for replay ordering; no
// SGR semantics depend on it.
var projectionOrder = [...]AttributeTag{
	TagReset, TagBold, TagFaint, TagItalic, TagUnderlined, TagInverse, TagForeground, TagBackground,
}

// Project renders an AttributeSnapshot into an ordered list of
// Attribute changes, including an entry for every tag the snapshot's
// source SGR sequence specified and nothing else. Project is pure: it
// depends only on snap and always returns the same result for the same
// input.
func Project(snap AttributeSnapshot) []Attribute {
	var out []Attribute
	for _, tag := range projectionOrder {
		value, specified := snap.Value(tag)
		if !specified {
			continue
		}
		switch tag {
		case TagReset:
			out = append(out, Attribute{Kind: AttributeReset})
		case TagBold:
			out = append(out, Attribute{Kind: AttributeBold, Bool: value})
		case TagFaint:
			out = append(out, Attribute{Kind: AttributeFaint, Bool: value})
		case TagItalic:
			out = append(out, Attribute{Kind: AttributeItalic, Bool: value})
		case TagUnderlined:
			out = append(out, Attribute{Kind: AttributeUnderlined, Bool: value})
		case TagInverse:
			out = append(out, Attribute{Kind: AttributeInverse, Bool: value})
		case TagForeground:
			if snap.Foreground != nil {
				out = append(out, Attribute{Kind: AttributeForeground, Color: *snap.Foreground})
			} else {
				out = append(out, Attribute{Kind: AttributeForegroundDefault})
			}
		case TagBackground:
			if snap.Background != nil {
				out = append(out, Attribute{Kind: AttributeBackground, Color: *snap.Background})
			} else {
				out = append(out, Attribute{Kind: AttributeBackgroundDefault})
			}
		}
	}
	return out
}
