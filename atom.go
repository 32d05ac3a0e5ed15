package hackblock

// Atom is the force-field payload of an atom in a template, or of the
// atom a hack adds. The B fields describe the perturbed (B) state, for
// free-energy topologies. Atom has no reference fields, so plain
// assignment copies it.
type Atom struct {
	Type    string
	Mass    float64
	Charge  float64
	Ptype   int
	TypeB   string
	MassB   float64
	ChargeB float64
	ResNr   int
}

// Copy returns a pointer to a copy of the Atom. It panics on a nil atom.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	r := new(Atom)
	*r = *A
	return r
}
