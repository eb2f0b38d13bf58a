package token

import "testing"

func TestAttributeSnapshotIsSpecified(t *testing.T) {
	snap := NewAttributeSnapshot()
	if snap.IsSpecified(TagBold) {
		t.Errorf("fresh snapshot should not specify anything")
	}
	snap.mark(TagBold, true)
	if !snap.IsSpecified(TagBold) {
		t.Errorf("expected TagBold to be specified after mark")
	}
	v, ok := snap.Value(TagBold)
	if !ok || !v {
		t.Errorf("Value(TagBold) = (%v,%v), want (true,true)", v, ok)
	}
}

func TestAttributeSnapshotClearReset(t *testing.T) {
	snap := NewAttributeSnapshot()
	snap.mark(TagReset, true)
	snap.clearReset()
	if snap.IsSpecified(TagReset) {
		t.Errorf("expected reset mark to be cleared")
	}
}

func TestAttributeSnapshotEqual(t *testing.T) {
	a := NewAttributeSnapshot()
	a.mark(TagBold, true)
	red := StandardColor(1)
	a.Foreground = &red

	b := NewAttributeSnapshot()
	b.mark(TagBold, true)
	red2 := StandardColor(1)
	b.Foreground = &red2

	if !a.Equal(b) {
		t.Errorf("expected a.Equal(b) for equivalent snapshots")
	}

	b.mark(TagFaint, true)
	if a.Equal(b) {
		t.Errorf("expected a.Equal(b) to be false once specified sets diverge")
	}
}

func TestAttributeSnapshotEqualNilVsSetColor(t *testing.T) {
	a := NewAttributeSnapshot()
	b := NewAttributeSnapshot()
	blue := StandardColor(4)
	b.Foreground = &blue
	if a.Equal(b) {
		t.Errorf("expected a.Equal(b) to be false when one has a colour and the other does not")
	}
}
