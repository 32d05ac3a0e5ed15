/*
 * hackblock.go, part of hackblock
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

// Hackblock is a modification patch: a named set of hacks plus the
// bonded terms the patch brings along. Termini and disulfide bridges
// are typical patches.
type Hackblock struct {
	Name     string
	FileBase string //base name of the library the patch was defined in, if any.
	Hacks    []Hack
	RB       BondedSet
}

// NewHackblock returns an empty patch with the given name.
func NewHackblock(name string) *Hackblock {
	r := new(Hackblock)
	r.Name = name
	r.Clear()
	return r
}

// Clear empties the hacks and the bonded lists of the patch.
// The name is kept.
func (H *Hackblock) Clear() {
	H.Hacks = nil
	ClearBondeds(&H.RB)
}

// AddHack appends h (not a copy) to the patch.
func (H *Hackblock) AddHack(h Hack) {
	H.Hacks = append(H.Hacks, h)
}

// MergeHackblock merges the hacks of s into d, and then the bonded
// lists. Several patches merged into the same destination accumulate:
// nothing merged earlier is removed or overwritten. Resolving which
// hack wins is up to whoever consumes the merged patch.
func (C *Composer) MergeHackblock(s, d *Hackblock) error {
	if err := C.MergeHacks(s.Hacks, &d.Hacks); err != nil {
		return errDecorate(err, "MergeHackblock")
	}
	return errDecorate(C.mergeBondeds(&s.RB, &d.RB), "MergeHackblock")
}

// CopyHackblock makes d an independent copy of s. It copies the scalar
// fields, clears d and merges s into it, so a copy is always the same as
// a merge into an empty patch. Copying a patch onto itself does nothing.
func (C *Composer) CopyHackblock(s, d *Hackblock) error {
	if s == d {
		return nil
	}
	*d = *s
	d.Clear()
	return errDecorate(C.MergeHackblock(s, d), "CopyHackblock")
}

// ApplyTo merges the bonded lists of the patch into the template r.
// The hacks are not applied, they need the atoms to be resolved first.
func (C *Composer) ApplyTo(H *Hackblock, r *Restp) error {
	return errDecorate(C.mergeBondeds(&H.RB, &r.RB), "ApplyTo")
}

// ApplyTo merges the bonded lists of the patch into r, using the default Composer.
func (H *Hackblock) ApplyTo(r *Restp) error {
	return std.ApplyTo(H, r)
}

// Free releases the name, the hacks and the bonded lists of the patch.
func (H *Hackblock) Free() {
	H.Name = ""
	H.FileBase = ""
	FreeHacks(&H.Hacks)
	FreeBondeds(&H.RB)
}

// FreeHackblocks frees every patch in *hb and then drops the collection.
func FreeHackblocks(hb *[]Hackblock) {
	for i := range *hb {
		(*hb)[i].Free()
	}
	*hb = nil
}
