/*
 * doc.go, part of hackblock
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

/*
Package hackblock contains residue templates (Restp), modification
patches (Hackblock, a named set of Hack plus bonded terms) and the
functions that compose them when building a topology: deep copies,
append-only merges, frees and a diagnostic dump.

Every string and slice in a template or patch belongs to it alone. Copies
and merges always duplicate, so modifying a copy never changes the
original. A copy is defined as clearing the destination and merging the
source into it, so copies and merges duplicate data in exactly the same way.

Merges only append. Merging several patches into one destination
accumulates all their hacks and terms in call order; deciding which hack
wins is left to the code that builds the final topology.

The package-level functions use a default Composer with no limits. Use
NewComposer with Options to set limits on the size of the lists (a merge
that would exceed them fails with ErrCapacity, leaving the list untouched)
or to log the merges.

Nothing in the package is safe for concurrent modification of the
same record.

DumpFile compresses its output according to the file extension:
.zst (zstd), .gz (gzip), .lzw (lzw). Any other extension gives plain text.
*/
package hackblock
