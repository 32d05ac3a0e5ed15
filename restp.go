/*
 * restp.go, part of hackblock
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

// RestpAtom is one atom of a residue template.
type RestpAtom struct {
	Name string
	Atom Atom
	CGNr int //charge group
}

// Restp is a residue template: the baseline definition of a residue,
// before any patch is applied.
type Restp struct {
	Name             string
	Atoms            []RestpAtom
	KeepAllDihedrals bool //keep all the generated dihedrals, not only one per bond.
	NRExcl           int  //number of bonds away for non-bonded exclusions.
	HH14             bool //generate 1-4 interactions between hydrogen pairs.
	RemoveDih        bool //remove proper dihedrals on bonds with an improper.
	RB               BondedSet
}

// NewRestp returns an empty template with the given name.
func NewRestp(name string) *Restp {
	r := new(Restp)
	r.Name = name
	ClearBondeds(&r.RB)
	return r
}

// AddAtom appends an atom to the template.
func (R *Restp) AddAtom(name string, at Atom, cgnr int) {
	R.Atoms = append(R.Atoms, RestpAtom{Name: name, Atom: at, CGNr: cgnr})
}

// Len returns the number of atoms in the template.
func (R *Restp) Len() int {
	return len(R.Atoms)
}

// AtomIndex returns the index of the first atom called name, or -1.
func (R *Restp) AtomIndex(name string) int {
	for i, v := range R.Atoms {
		if v.Name == name {
			return i
		}
	}
	return -1
}

// CopyRestp makes d an independent copy of s. The bonded lists of d are
// cleared and then s's lists are merged into them, so the copy of the
// lists is exactly a merge into empty lists. Copying a template onto
// itself does nothing.
func (C *Composer) CopyRestp(s, d *Restp) error {
	if s == d {
		return nil
	}
	*d = *s
	d.Atoms = nil
	if s.Atoms != nil {
		d.Atoms = make([]RestpAtom, len(s.Atoms))
		copy(d.Atoms, s.Atoms) //RestpAtom has only value fields.
	}
	ClearBondeds(&d.RB)
	return errDecorate(C.mergeBondeds(&s.RB, &d.RB), "CopyRestp")
}

// Free releases everything the template holds, leaving it empty.
// It works on partially filled templates.
func (R *Restp) Free() {
	R.Name = ""
	for i := range R.Atoms {
		R.Atoms[i] = RestpAtom{}
	}
	R.Atoms = nil
	FreeBondeds(&R.RB)
	R.KeepAllDihedrals = false
	R.NRExcl = 0
	R.HH14 = false
	R.RemoveDih = false
}

// FreeRestps frees every template in *rtp and then drops the collection.
func FreeRestps(rtp *[]Restp) {
	for i := range *rtp {
		(*rtp)[i].Free()
	}
	*rtp = nil
}
