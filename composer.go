/*
 * composer.go, part of hackblock
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
	"log"
	"os"
)

// Composer merges and copies templates and patches following its Options.
// A Composer holds no state besides its settings, but the records it
// works on are not protected: the caller must make sure nothing else
// touches the source or the destination during a call.
type Composer struct {
	o   *Options
	log *log.Logger
}

// NewComposer returns a Composer with the given options, or the default
// ones if o is nil. Messages, if any, go to logger, or to a standard-error
// logger if none is given.
func NewComposer(o *Options, logger ...*log.Logger) *Composer {
	if o == nil {
		o = DefaultOptions()
	}
	C := &Composer{o: o}
	if len(logger) > 0 && logger[0] != nil {
		C.log = logger[0]
	} else {
		C.log = log.New(os.Stderr, "hackblock: ", log.LstdFlags)
	}
	return C
}

// Options returns the options of the Composer.
func (C *Composer) Options() *Options {
	return C.o
}

func (C *Composer) logf(format string, v ...any) {
	if C.o.verbose {
		C.log.Printf(format, v...)
	}
}

// MergeBondeds appends independent copies of the terms of each of the lists
// in s to the corresponding list in d, preserving order.
func (C *Composer) MergeBondeds(s, d *BondedSet) error {
	return errDecorate(C.mergeBondeds(s, d), "MergeBondeds")
}

var std = NewComposer(nil)

// MergeBondeds appends copies of the terms in s to d, using the default Composer.
func MergeBondeds(s, d *BondedSet) error {
	return std.MergeBondeds(s, d)
}

// MergeHacks appends copies of the hacks in s to *d, using the default Composer.
func MergeHacks(s []Hack, d *[]Hack) error {
	return std.MergeHacks(s, d)
}

// CopyRestp makes d an independent copy of s, using the default Composer.
func CopyRestp(s, d *Restp) error {
	return std.CopyRestp(s, d)
}

// MergeHackblock merges s into d, using the default Composer.
func MergeHackblock(s, d *Hackblock) error {
	return std.MergeHackblock(s, d)
}

// CopyHackblock makes d an independent copy of s, using the default Composer.
func CopyHackblock(s, d *Hackblock) error {
	return std.CopyHackblock(s, d)
}
