/*
 * hack.go, part of hackblock
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package hackblock

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Hack is a single modification of a residue: it deletes, adds or
// renames/retypes atoms. The anchors name atoms of the final, merged
// residue, which are used to place new atoms. They are not resolved here.
type Hack struct {
	NR      int    //how many atoms are added
	OldName string //empty for additions
	NewName string //empty for deletions
	Atom    *Atom  //payload of the new or modified atom, if any.
	Kind    int    //the kind of modification (e.g. hydrogen-adding geometry)
	CGNr    Maybe[int]
	Anchors [MaxAtomList]string
	NewX    [3]Maybe[float64] //explicit coordinates for the new atom, if known.
}

// Convenience names for the anchors.
const (
	AI = iota
	AJ
	AK
	AL
)

// HackOp is the operation a Hack performs.
type HackOp int

const (
	HackInvalid HackOp = iota //neither the old nor the new name is set
	HackDelete
	HackAdd
	HackReplace
)

func (H HackOp) String() string {
	switch H {
	case HackDelete:
		return "delete"
	case HackAdd:
		return "add"
	case HackReplace:
		return "replace"
	}
	return "invalid"
}

// Op returns the operation the hack performs, determined by which
// names are set.
func (H *Hack) Op() HackOp {
	switch {
	case H.OldName != "" && H.NewName == "":
		return HackDelete
	case H.OldName == "" && H.NewName != "":
		return HackAdd
	case H.OldName != "" && H.NewName != "":
		return HackReplace
	}
	return HackInvalid
}

// Clear resets the hack to its empty state.
func (H *Hack) Clear() {
	*H = Hack{}
}

// Target returns the explicit coordinates of the hack, and true,
// only if the three components are set.
func (H *Hack) Target() (r3.Vec, bool) {
	x, okx := H.NewX[0].Get()
	y, oky := H.NewX[1].Get()
	z, okz := H.NewX[2].Get()
	if !(okx && oky && okz) {
		return r3.Vec{}, false
	}
	return r3.Vec{X: x, Y: y, Z: z}, true
}

// SetTarget sets the three explicit coordinates of the hack.
func (H *Hack) SetTarget(v r3.Vec) {
	H.NewX = [3]Maybe[float64]{Some(v.X), Some(v.Y), Some(v.Z)}
}

// Copy returns an independent copy of the hack. The payload is copied
// only if present.
func (H *Hack) Copy() Hack {
	var r Hack
	CopyHack(H, &r)
	return r
}

// CopyHack overwrites d with an independent copy of s.
func CopyHack(s, d *Hack) {
	*d = *s //scalars, names, anchors and coordinates are values.
	if s.Atom != nil {
		d.Atom = s.Atom.Copy()
	} else {
		d.Atom = nil
	}
}

// MergeHacks appends copies of the hacks in s to *d, in order. The storage of d
// grows exactly by len(s). An empty s does nothing. It panics if a hack in s
// has neither an old nor a new name.
func (C *Composer) MergeHacks(s []Hack, d *[]Hack) error {
	if len(s) == 0 {
		return nil
	}
	nd := len(*d)
	if lim := C.o.maxHacks; lim > 0 && nd+len(s) > lim {
		return capacityError(hackCapacity, "MergeHacks", nd, len(s), lim)
	}
	grown := make([]Hack, nd+len(s))
	copy(grown, *d)
	for i := range s {
		if s[i].Op() == HackInvalid {
			panic(fmt.Sprintf("MergeHacks: hack %d has neither an old nor a new name", i))
		}
		CopyHack(&s[i], &grown[nd+i])
	}
	*d = grown
	C.logf("merged %d hacks (%d total)", len(s), len(grown))
	return nil
}

// FreeHacks clears every hack in *h and drops the storage.
func FreeHacks(h *[]Hack) {
	for i := range *h {
		(*h)[i].Clear()
	}
	*h = nil
}
