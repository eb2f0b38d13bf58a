package token

import "testing"

func TestSgrReduceBasic(t *testing.T) {
	snap := sgrReduce("1;31")
	if v, ok := snap.Value(TagBold); !ok || !v {
		t.Errorf("bold = (%v,%v), want (true,true)", v, ok)
	}
	if snap.Foreground == nil || *snap.Foreground != StandardColor(1) {
		t.Errorf("foreground = %v, want standard(1)", snap.Foreground)
	}
	if snap.IsSpecified(TagReset) {
		t.Errorf("reset should not be specified when code 0 never appears")
	}
}

func TestSgrReduceResetDominance(t *testing.T) {
	// An empty leading parameter means SGR 0 (reset); the 31 afterward
	// sets a foreground colour but the reset mark must survive since
	// sawReset was set earlier in this same sequence.
	snap := sgrReduce(";31")
	if v, ok := snap.Value(TagReset); !ok || !v {
		t.Errorf("reset = (%v,%v), want (true,true)", v, ok)
	}
	if v, ok := snap.Value(TagForeground); !ok || !v {
		t.Errorf("foreground specified = (%v,%v), want (true,true)", v, ok)
	}
}

func TestSgrReduceWithoutZeroHasNoResetMark(t *testing.T) {
	// With no code 0 in this sequence, any other code must NOT carry a
	// reset mark forward (there was never one to carry).
	snap := sgrReduce("31")
	if snap.IsSpecified(TagReset) {
		t.Errorf("reset should not be specified")
	}
}

func TestSgrReduceDisableCodes(t *testing.T) {
	snap := sgrReduce("22")
	if v, ok := snap.Value(TagBold); !ok || v {
		t.Errorf("bold = (%v,%v), want (false,true)", v, ok)
	}
	if v, ok := snap.Value(TagFaint); !ok || v {
		t.Errorf("faint = (%v,%v), want (false,true)", v, ok)
	}
}

func TestSgrReduceDefaultColors(t *testing.T) {
	snap := sgrReduce("39;49")
	if snap.Foreground != nil {
		t.Errorf("foreground = %v, want nil", snap.Foreground)
	}
	if snap.Background != nil {
		t.Errorf("background = %v, want nil", snap.Background)
	}
	if v, ok := snap.Value(TagForeground); !ok || v {
		t.Errorf("foreground specified = (%v,%v), want (false,true)", v, ok)
	}
	if v, ok := snap.Value(TagBackground); !ok || v {
		t.Errorf("background specified = (%v,%v), want (false,true)", v, ok)
	}
}

func TestSgrReduceExtendedColors(t *testing.T) {
	tests := []struct {
		name  string
		param string
		want  Color
	}{
		{"palette foreground", "38;5;200", PaletteColor(200)},
		{"rgb background via 48", "48;2;10;20;30", RGBColor(10, 20, 30)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := sgrReduce(tc.param)
			var got *Color
			if tc.param[0:2] == "38" {
				got = snap.Foreground
			} else {
				got = snap.Background
			}
			if got == nil || *got != tc.want {
				t.Errorf("colour = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSgrReduceMalformedExtendedColorLeavesAttributeUntouched(t *testing.T) {
	// 38 with an unknown colourspace selector (not 2 or 5) must not
	// produce a colour nor mark the foreground as specified.
	snap := sgrReduce("38;9;1")
	if snap.Foreground != nil {
		t.Errorf("foreground = %v, want nil", snap.Foreground)
	}
	if snap.IsSpecified(TagForeground) {
		t.Errorf("foreground should not be specified for a malformed extension")
	}
}

func TestSgrReduceTruncatedRGBLeavesAttributeUntouched(t *testing.T) {
	snap := sgrReduce("38;2;10;20")
	if snap.Foreground != nil {
		t.Errorf("foreground = %v, want nil", snap.Foreground)
	}
}

func TestSgrReduceNonNumericComponentIgnored(t *testing.T) {
	// Per the tokenizer's recognizable-framing-never-errors principle,
	// a non-numeric SGR component is skipped rather than aborting the
	// whole reduction.
	snap := sgrReduce("bogus;1")
	if v, ok := snap.Value(TagBold); !ok || !v {
		t.Errorf("bold = (%v,%v), want (true,true)", v, ok)
	}
}

func TestSgrReduceEmptyParameterIsReset(t *testing.T) {
	snap := sgrReduce("")
	if v, ok := snap.Value(TagReset); !ok || !v {
		t.Errorf("reset = (%v,%v), want (true,true)", v, ok)
	}
}

func TestSgrReduceBrightColors(t *testing.T) {
	snap := sgrReduce("95;105")
	if snap.Foreground == nil || *snap.Foreground != BrightColor(5) {
		t.Errorf("foreground = %v, want bright(5)", snap.Foreground)
	}
	if snap.Background == nil || *snap.Background != BrightColor(5) {
		t.Errorf("background = %v, want bright(5)", snap.Background)
	}
}
