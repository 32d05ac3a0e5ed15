package hackblock

import (
	"bufio"
	"fmt"
	"io"
)

// ss returns s, or "-" if s is empty.
func ss(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// DumpHackblocks writes a human-readable description of the patches in hb to out.
// The output is meant for inspection and tests, it is not a file format.
func DumpHackblocks(out io.Writer, hb []Hackblock) error {
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "t_hackblock\n")
	for i := range hb {
		h := &hb[i]
		fmt.Fprintf(w, "%3d %4s %2d\n", i, ss(h.Name), len(h.Hacks))
		for j := range h.Hacks {
			k := &h.Hacks[j]
			payload := ""
			if k.Atom != nil {
				payload = "+"
			}
			fmt.Fprintf(w, "%d: %d %4s %4s %1s %2d %s %4s %4s %4s %4s\n",
				j, k.NR, ss(k.OldName), ss(k.NewName), payload, k.Kind, k.CGNr,
				ss(k.Anchors[AI]), ss(k.Anchors[AJ]), ss(k.Anchors[AK]), ss(k.Anchors[AL]))
		}
		dumpBondeds(w, &h.RB)
		fmt.Fprintf(w, "\n")
	}
	return w.Flush()
}

// DumpRestps writes a human-readable description of the templates in rtp to out.
func DumpRestps(out io.Writer, rtp []Restp) error {
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "t_restp\n")
	for i := range rtp {
		r := &rtp[i]
		fmt.Fprintf(w, "%3d %4s %2d\n", i, ss(r.Name), len(r.Atoms))
		for j, a := range r.Atoms {
			fmt.Fprintf(w, "%d: %4s %4s %8.3f %2d\n", j, ss(a.Name), ss(a.Atom.Type), a.Atom.Charge, a.CGNr)
		}
		dumpBondeds(w, &r.RB)
		fmt.Fprintf(w, "\n")
	}
	return w.Flush()
}

func dumpBondeds(w io.Writer, rb *BondedSet) {
	for j := 0; j < NBondedKinds; j++ {
		terms := rb[j].Terms
		if len(terms) == 0 {
			continue
		}
		k := BondedKind(j)
		fmt.Fprintf(w, " %c %d:", k.Tag(), len(terms))
		for _, b := range terms {
			fmt.Fprintf(w, " [")
			for l := 0; l < k.NAtoms(); l++ {
				name := ""
				if l < len(b.Atoms) {
					name = b.Atoms[l]
				}
				fmt.Fprintf(w, " %s", ss(name))
			}
			fmt.Fprintf(w, " %s]", ss(b.Params))
		}
		fmt.Fprintf(w, "\n")
	}
}
