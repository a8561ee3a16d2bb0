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

import "github.com/gofceux/gofceux/abi"

// Domain selects the memory space for ReadMemory() and WriteMemory().
type Domain = abi.Domain

// DomainCPU is the CPU address space.
const DomainCPU = abi.MemoryCPU

// Vector is the address of one of the 6502 interrupt vectors.
type Vector uint16

// List of valid Vector values.
const (
	VectorNMI   Vector = 0xfffa
	VectorReset Vector = 0xfffc
	VectorIRQ   Vector = 0xfffe
)

func (v Vector) String() string {
	switch v {
	case VectorNMI:
		return "NMI"
	case VectorReset:
		return "RESET"
	case VectorIRQ:
		return "IRQ"
	}
	return "unknown vector"
}

// ReadMemory reads the byte at address in the memory domain. There is no
// validation of the address. Whatever the native core returns is returned.
func (ins *Instance) ReadMemory(addr uint16, domain Domain) uint8 {
	ins.assertLive()
	return ins.core.MemRead(addr, domain)
}

// WriteMemory writes the byte to address in the memory domain. There is no
// validation of the address.
func (ins *Instance) WriteMemory(addr uint16, value uint8, domain Domain) {
	ins.assertLive()
	ins.core.MemWrite(addr, value, domain)
}

// ReadVector returns the address stored in the interrupt vector. Vectors are
// little-endian.
func (ins *Instance) ReadVector(v Vector) uint16 {
	lo := ins.ReadMemory(uint16(v), DomainCPU)
	hi := ins.ReadMemory(uint16(v)+1, DomainCPU)
	return uint16(hi)<<8 | uint16(lo)
}
