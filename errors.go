/*
 * errors.go, part of hackblock
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
	"errors"
	"fmt"
	"strings"
)

// Decorator is implemented by the errors of this package. The Decorate method allows to add
// and retrieve info from the error, without changing its type or wrapping it around something else.
// Each call returns the "decoration" slice resulting from the current call. If passed an empty string,
// it just returns the current value.
type Decorator interface {
	Error() string
	Decorate(string) []string
}

// Error is the general structure for errors in the composition engine.
type Error struct {
	message  string
	deco     []string
	critical bool
	err      error //the sentinel, if any, so errors.Is works.
}

func (err *Error) Error() string {
	if len(err.deco) == 0 {
		return "hackblock: " + err.message
	}
	return fmt.Sprintf("hackblock: %s (%s)", err.message, strings.Join(err.deco, " <- "))
}

// Decorate adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical returns true if the error is critical, false otherwise.
// Capacity errors are not critical: the destination is left as it was
// before the failing batch.
func (err *Error) Critical() bool { return err.critical }

func (err *Error) Unwrap() error { return err.err }

// ErrCapacity is returned (wrapped in an *Error) when a merge would grow a
// list past the limits set in the Options.
var ErrCapacity = errors.New("capacity exceeded")

const (
	bondedCapacity = "bonded list would exceed its capacity"
	hackCapacity   = "hack list would exceed its capacity"
)

func capacityError(message, caller string, have, add, limit int) *Error {
	return &Error{
		message: fmt.Sprintf("%s: %d + %d > %d", message, have, add, limit),
		deco:    []string{caller},
		err:     ErrCapacity,
	}
}

// errDecorate decorates the error with the caller's name before returning it,
// if the error is a Decorator. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var d Decorator
	if errors.As(err, &d) {
		d.Decorate(caller)
	}
	return err
}
