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

package fceuxtest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const (
	inesHeaderSize  = 16
	inesTrainerSize = 512
	inesTrainerFlag = 0x04
)

var inesMagic = []byte{'N', 'E', 'S', 0x1a}

func parseINES(data []byte) ([]uint8, error) {
	if len(data) < inesHeaderSize {
		return nil, errors.New("file too short for iNES header")
	}
	for i, b := range inesMagic {
		if data[i] != b {
			return nil, errors.New("not an iNES file")
		}
	}

	banks := int(data[4])
	if banks != 1 && banks != 2 {
		return nil, errors.New("unsupported number of PRG banks")
	}

	origin := inesHeaderSize
	if data[6]&inesTrainerFlag != 0 {
		origin += inesTrainerSize
	}

	size := banks * prgBankSize
	if len(data) < origin+size {
		return nil, errors.New("file too short for PRG ROM")
	}

	prg := make([]uint8, size)
	copy(prg, data[origin:])
	return prg, nil
}

// ROM returns an iNES image with the number of 16KiB PRG banks (one or two)
// and the interrupt vectors. The PRG ROM is otherwise filled with NOP
// instructions. There is no CHR ROM.
func ROM(prgBanks int, nmi uint16, reset uint16, irq uint16) []byte {
	size := prgBanks * prgBankSize

	data := make([]byte, inesHeaderSize+size)
	copy(data, inesMagic)
	data[4] = uint8(prgBanks)

	prg := data[inesHeaderSize:]
	for i := range prg {
		prg[i] = 0xea
	}

	// vectors are at the end of the last bank
	v := prg[size-6:]
	v[0], v[1] = uint8(nmi), uint8(nmi>>8)
	v[2], v[3] = uint8(reset), uint8(reset>>8)
	v[4], v[5] = uint8(irq), uint8(irq>>8)

	return data
}

// WriteROM writes a two bank ROM to a temporary file and returns the path.
// The file is removed automatically at the end of the test.
func WriteROM(t testing.TB, nmi uint16, reset uint16, irq uint16) string {
	t.Helper()
	pth := filepath.Join(t.TempDir(), "test.nes")
	if err := os.WriteFile(pth, ROM(2, nmi, reset, irq), 0o644); err != nil {
		t.Fatalf("fceuxtest: %v", err)
	}
	return pth
}
