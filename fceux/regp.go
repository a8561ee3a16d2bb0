// This file is part of Gofceux.
//
// Gofceux is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gofceux is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gofceux.  If not, see <https://www.gnu.org/licenses/>.

package fceux

// RegP is the value of the 6502 status register.
type RegP uint8

// Carry returns the carry flag.
func (p RegP) Carry() bool {
	return p&0x01 != 0
}

// Zero returns the zero flag.
func (p RegP) Zero() bool {
	return p&0x02 != 0
}

// InterruptDisable returns the interrupt disable flag.
func (p RegP) InterruptDisable() bool {
	return p&0x04 != 0
}

// Decimal returns the decimal flag. The NES CPU ignores it but the bit can
// still be set.
func (p RegP) Decimal() bool {
	return p&0x08 != 0
}

// Overflow returns the overflow flag.
func (p RegP) Overflow() bool {
	return p&0x40 != 0
}

// Negative returns the negative flag.
func (p RegP) Negative() bool {
	return p&0x80 != 0
}

// String returns the flags in "NV-BDIZC" order. Set flags are upper case.
func (p RegP) String() string {
	const set = "NV-BDIZC"
	const clear = "nv-bdizc"
	s := make([]byte, 8)
	for i := 0; i < 8; i++ {
		if p&(0x80>>i) != 0 {
			s[i] = set[i]
		} else {
			s[i] = clear[i]
		}
	}
	return string(s)
}
