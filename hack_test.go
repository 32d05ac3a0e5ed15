package hackblock

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestHackClear(Te *testing.T) {
	h := Hack{NR: 3, OldName: "O", NewName: "OT1", Atom: &Atom{Type: "OC"}, Kind: 2, CGNr: Some(4)}
	h.Anchors[AI] = "C"
	h.SetTarget(r3.Vec{X: 1, Y: 2, Z: 3})
	h.Clear()
	if h.NR != 0 || h.OldName != "" || h.NewName != "" || h.Atom != nil || h.Kind != 0 {
		Te.Errorf("hack not cleared: %+v", h)
	}
	if h.CGNr.IsSet() || h.Anchors[AI] != "" {
		Te.Errorf("charge group or anchors still set: %+v", h)
	}
	if _, ok := h.Target(); ok {
		Te.Error("coordinates still set after Clear")
	}
}

func TestHackOp(Te *testing.T) {
	cases := []struct {
		old, new string
		op       HackOp
	}{
		{"HN", "", HackDelete},
		{"", "H3", HackAdd},
		{"O", "OT1", HackReplace},
		{"", "", HackInvalid},
	}
	for _, c := range cases {
		h := Hack{OldName: c.old, NewName: c.new}
		if h.Op() != c.op {
			Te.Errorf("%q -> %q: got %s, want %s", c.old, c.new, h.Op(), c.op)
		}
	}
}

func TestCopyHack(Te *testing.T) {
	s := Hack{NR: 1, OldName: "O", NewName: "OT1", Atom: &Atom{Type: "OC", Charge: -0.5}, Kind: 1, CGNr: Some(2)}
	s.Anchors = [MaxAtomList]string{"C", "CA", "N", ""}
	s.NewX[0] = Some(1.5)
	var d Hack
	CopyHack(&s, &d)
	if d.Atom == s.Atom {
		Te.Fatal("payload shared between copies")
	}
	if *d.Atom != *s.Atom || d.Anchors != s.Anchors || d.NewX != s.NewX || d.CGNr != s.CGNr {
		Te.Errorf("copy differs: %+v %+v", s, d)
	}
	s.Atom.Charge = 1
	s.Anchors[AJ] = "CB"
	s.OldName = "X"
	s.NewX[0] = Some(9.0)
	if d.Atom.Charge != -0.5 || d.Anchors[AJ] != "CA" || d.OldName != "O" {
		Te.Errorf("copy follows changes in the source: %+v", d)
	}
	if x, _ := d.NewX[0].Get(); x != 1.5 {
		Te.Errorf("coordinate changed in the copy: %f", x)
	}
	//absent payloads stay absent
	s.Atom = nil
	d = s.Copy()
	if d.Atom != nil {
		Te.Error("copy made up a payload")
	}
}

func TestMergeHacks(Te *testing.T) {
	d := []Hack{{NR: 1, OldName: "H"}}
	s := []Hack{{NR: 2, NewName: "H1"}, {NR: 1, OldName: "O", NewName: "OT1", Atom: &Atom{Type: "OC"}}}
	errql(Te, MergeHacks(s, &d))
	if len(d) != 3 || cap(d) != 3 {
		Te.Fatalf("got len %d cap %d, want 3 and 3", len(d), cap(d))
	}
	if d[0].OldName != "H" || d[1].NewName != "H1" || d[2].NewName != "OT1" {
		Te.Errorf("wrong order after merge: %+v", d)
	}
	if d[2].Atom == s[1].Atom {
		Te.Error("merged hack shares its payload with the source")
	}
	errql(Te, MergeHacks(nil, &d))
	if len(d) != 3 {
		Te.Error("empty merge changed the destination")
	}
	bad := []Hack{{NR: 1}}
	if !panics(func() { MergeHacks(bad, &d) }) {
		Te.Error("merging a hack without names didn't panic")
	}
	if len(d) != 3 {
		Te.Error("failed merge changed the destination")
	}
}

func TestHackTarget(Te *testing.T) {
	var h Hack
	h.NewX[0] = Some(1.0)
	h.NewX[1] = Some(2.0)
	if _, ok := h.Target(); ok {
		Te.Error("target reported with only two coordinates set")
	}
	h.NewX[2] = Some(3.0)
	v, ok := h.Target()
	if !ok || v != (r3.Vec{X: 1, Y: 2, Z: 3}) {
		Te.Errorf("wrong target %v %v", v, ok)
	}
}

func TestFreeHacks(Te *testing.T) {
	h := []Hack{{NR: 1, NewName: "H1", Atom: &Atom{}}, {OldName: "HN"}}
	keep := h
	FreeHacks(&h)
	if h != nil {
		Te.Error("storage not dropped")
	}
	for i := range keep {
		if keep[i] != (Hack{}) {
			Te.Errorf("hack %d not released: %+v", i, keep[i])
		}
	}
}
