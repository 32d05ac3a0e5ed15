/*
 * bonded.go, part of hackblock
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

import "fmt"

// BondedKind identifies one of the bonded-term lists that every
// template and patch carries.
type BondedKind int

const (
	Bonds BondedKind = iota
	Angles
	Dihedrals
	Impropers
	NBondedKinds int = iota //the number of bonded kinds
)

// MaxAtomList is the largest number of atoms taking part in a bonded term.
const MaxAtomList = 4

// the order MUST match the BondedKind constants.
var bondedNames = [NBondedKinds]string{"bonds", "angles", "dihedrals", "impropers"}
var bondedNAtoms = [NBondedKinds]int{2, 3, 4, 4}

// String returns the name of the kind, as in the residue library headers.
func (K BondedKind) String() string {
	if K < 0 || int(K) >= NBondedKinds {
		return fmt.Sprintf("BondedKind(%d)", int(K))
	}
	return bondedNames[K]
}

// NAtoms returns the number of atoms in a term of kind K.
func (K BondedKind) NAtoms() int {
	return bondedNAtoms[K]
}

// Tag returns the one-letter tag of the kind.
func (K BondedKind) Tag() byte {
	return bondedNames[K][0]
}

// Bonded is one bonded term. Atoms are names in the template or patch,
// Params is an optional string overriding the force field parameters.
// An empty Params means no override.
type Bonded struct {
	Atoms  []string
	Params string
}

func newBonded(params string, atoms ...string) Bonded {
	return Bonded{Atoms: atoms, Params: params}
}

// NewBond returns a bond between ai and aj.
func NewBond(ai, aj, params string) Bonded { return newBonded(params, ai, aj) }

// NewAngle returns an angle term ai-aj-ak.
func NewAngle(ai, aj, ak, params string) Bonded { return newBonded(params, ai, aj, ak) }

// NewDihedral returns a proper dihedral term.
func NewDihedral(ai, aj, ak, al, params string) Bonded {
	return newBonded(params, ai, aj, ak, al)
}

// NewImproper returns an improper dihedral term.
func NewImproper(ai, aj, ak, al, params string) Bonded {
	return newBonded(params, ai, aj, ak, al)
}

// Copy returns an independent copy of the term.
func (B Bonded) Copy() Bonded {
	r := Bonded{Params: B.Params}
	if B.Atoms != nil {
		r.Atoms = make([]string, len(B.Atoms))
		copy(r.Atoms, B.Atoms)
	}
	return r
}

func (B *Bonded) free() {
	B.Atoms = nil
	B.Params = ""
}

// Bondeds is the ordered list of terms of one kind.
type Bondeds struct {
	Kind  BondedKind
	Terms []Bonded
}

// Len returns the number of terms in the list.
func (B *Bondeds) Len() int {
	return len(B.Terms)
}

// Add appends a copy of a term to the list. It panics if the term doesn't have
// the number of atoms required by the kind of the list.
func (B *Bondeds) Add(b Bonded) {
	checkArity(B.Kind, b, "Bondeds.Add")
	B.Terms = append(B.Terms, b.Copy())
}

// Free releases the strings of every term and the terms themselves,
// leaving a cleared list. It is a no-op on a cleared list.
func (B *Bondeds) Free() {
	for i := range B.Terms {
		B.Terms[i].free()
	}
	B.Terms = nil
}

func checkArity(k BondedKind, b Bonded, caller string) {
	if len(b.Atoms) != k.NAtoms() {
		panic(fmt.Sprintf("%s: %s term with %d atoms, %d expected", caller, k, len(b.Atoms), k.NAtoms()))
	}
}

// BondedSet holds the four bonded lists of a template or patch,
// indexed by BondedKind.
type BondedSet [NBondedKinds]Bondeds

// ClearBondeds empties the four lists in rb and sets their kinds.
func ClearBondeds(rb *BondedSet) {
	for i := range rb {
		rb[i].Kind = BondedKind(i)
		rb[i].Terms = nil
	}
}

// FreeBondeds frees the four lists in rb.
func FreeBondeds(rb *BondedSet) {
	for i := range rb {
		rb[i].Free()
		rb[i].Kind = BondedKind(i)
	}
}

// Add appends a copy of b to the list of kind k. Unlike Bondeds.Add, it
// works on sets that were never cleared, such as the zero value.
func (rb *BondedSet) Add(k BondedKind, b Bonded) {
	rb[k].Kind = k
	rb[k].Add(b)
}

// Len returns the total number of terms in the four lists.
func (rb *BondedSet) Len() int {
	n := 0
	for i := range rb {
		n += len(rb[i].Terms)
	}
	return n
}

// mergeBondeds appends copies of the terms in s to d, kind by kind.
// Each kind grows in one step, so a kind that fails the capacity check
// is left as it was. Kinds already merged stay merged.
func (C *Composer) mergeBondeds(s, d *BondedSet) error {
	for i := range d {
		d[i].Kind = BondedKind(i)
	}
	for i := 0; i < NBondedKinds; i++ {
		src := s[i].Terms
		if len(src) == 0 {
			continue
		}
		k := BondedKind(i)
		nd := len(d[i].Terms)
		if lim := C.o.maxTerms; lim > 0 && nd+len(src) > lim {
			return capacityError(bondedCapacity+" ("+k.String()+")", "mergeBondeds", nd, len(src), lim)
		}
		grown := make([]Bonded, nd+len(src))
		copy(grown, d[i].Terms)
		for j, b := range src {
			checkArity(k, b, "MergeBondeds")
			grown[nd+j] = b.Copy()
		}
		d[i].Terms = grown
		C.logf("merged %d %s (%d total)", len(src), k, len(grown))
	}
	return nil
}
