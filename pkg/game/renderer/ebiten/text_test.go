package ebiten

import (
	"testing"
)

func TestParseMarkup(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want []string
	}{
		{
			name: "plain text",
			msg:  "Entered the hallway.",
			want: []string{"Entered the hallway."},
		},
		{
			name: "single token",
			msg:  "Found a ITEM{gem}.",
			want: []string{"Found a ", "gem", "."},
		},
		{
			name: "multiple tokens",
			msg:  "ACTION{enter} to build the ROOM{Vault}",
			want: []string{"enter", " to build the ", "Vault"},
		},
		{
			name: "unknown token keeps content",
			msg:  "WHATEVER{stuff}",
			want: []string{"stuff"},
		},
		{
			name: "empty message",
			msg:  "",
			want: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := parseMarkup(tt.msg)
			if len(segs) != len(tt.want) {
				t.Fatalf("got %d segments, want %d: %#v", len(segs), len(tt.want), segs)
			}
			for i, seg := range segs {
				if seg.text != tt.want[i] {
					t.Errorf("segment %d = %q, want %q", i, seg.text, tt.want[i])
				}
			}
		})
	}
}

func TestParseMarkupColors(t *testing.T) {
	segs := parseMarkup("a ITEM{key} opens DENIED{nothing}")
	if len(segs) != 4 {
		t.Fatalf("got %d segments, want 4", len(segs))
	}
	if segs[1].color != colorItem {
		t.Errorf("ITEM segment colour = %v, want %v", segs[1].color, colorItem)
	}
	if segs[3].color != colorDenied {
		t.Errorf("DENIED segment colour = %v, want %v", segs[3].color, colorDenied)
	}
}

func TestApplyAlpha(t *testing.T) {
	faded := applyAlpha(colorText, 0)
	r, g, b, a := faded.RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("alpha 0 = %v, want fully transparent", faded)
	}

	full := applyAlpha(colorText, 1.5) // clamped to 1
	fr, _, _, fa := full.RGBA()
	or, _, _, oa := colorText.RGBA()
	if fr != or || fa != oa {
		t.Errorf("alpha > 1 changed the colour: got %v, want %v", full, colorText)
	}
}
