package token

// AttributeTag names one of the boolean/colour facets an SGR sequence
// can mention. Order here is the canonical projection order used by
// AttributeProjector (see projector.go).
type AttributeTag int

const (
	// TagReset marks that the snapshot originated from an SGR 0.
	TagReset AttributeTag = iota
	// TagBold marks SGR 1/22.
	TagBold
	// TagFaint marks SGR 2/22.
	TagFaint
	// TagItalic marks SGR 3/23.
	TagItalic
	// TagUnderlined marks SGR 4/24.
	TagUnderlined
	// TagInverse marks SGR 7/27.
	TagInverse
	// TagForeground marks any foreground-setting code (30-37, 38, 39, 90-97).
	TagForeground
	// TagBackground marks any background-setting code (40-47, 48, 49, 100-107).
	TagBackground
)

// AttributeSnapshot holds the graphic-rendition state produced by one
// SGR sequence. It distinguishes attributes the sequence did not
// mention at all from attributes it explicitly enabled or disabled:
// the specified set records which tags were mentioned, and the boolean
// it maps to records the requested value. Colour slots are a cache —
// the specified set is authoritative for whether a colour was touched
// at all, since SGR 39/49 explicitly mention a colour while clearing
// its slot to nil.
type AttributeSnapshot struct {
	Foreground *Color
	Background *Color
	specified  map[AttributeTag]bool
}

// NewAttributeSnapshot returns an empty snapshot: no attribute has been
// specified and both colour slots are nil.
func NewAttributeSnapshot() AttributeSnapshot {
	return AttributeSnapshot{}
}

// IsSpecified reports whether tag was explicitly mentioned by the SGR
// sequence that produced this snapshot.
func (a AttributeSnapshot) IsSpecified(tag AttributeTag) bool {
	_, ok := a.specified[tag]
	return ok
}

// Value returns the requested boolean value for tag and whether tag was
// specified at all. For TagForeground/TagBackground the boolean records
// whether the colour was set to a concrete value (true) or to the
// terminal default via SGR 39/49 (false); the actual Color, if any,
// lives in Foreground/Background.
func (a AttributeSnapshot) Value(tag AttributeTag) (value bool, specified bool) {
	v, ok := a.specified[tag]
	return v, ok
}

// mark records that tag was explicitly specified with the given value.
// It leaves any reset mark in place; the SGR reducer decides when to
// drop it by calling clearReset.
func (a *AttributeSnapshot) mark(tag AttributeTag, value bool) {
	if a.specified == nil {
		a.specified = make(map[AttributeTag]bool, 8)
	}
	a.specified[tag] = value
}

// clearReset removes the reset mark, used when a later parameter in the
// same SGR sequence specifies something concrete.
func (a *AttributeSnapshot) clearReset() {
	delete(a.specified, TagReset)
}

// Equal reports whether a and other carry identical foreground and
// background colours and identical specified sets.
func (a AttributeSnapshot) Equal(other AttributeSnapshot) bool {
	if !colorEqual(a.Foreground, other.Foreground) {
		return false
	}
	if !colorEqual(a.Background, other.Background) {
		return false
	}
	if len(a.specified) != len(other.specified) {
		return false
	}
	for tag, v := range a.specified {
		ov, ok := other.specified[tag]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

func colorEqual(a, b *Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
