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

// Hook is implemented by types that want to be told when the native core is
// about to execute an instruction. BeforeExec() is called on the same
// goroutine as RunFrame() and must not call RunFrame().
type Hook interface {
	BeforeExec(addr uint16)
}

// HookFunc allows an ordinary function to be used as a Hook.
type HookFunc func(addr uint16)

// BeforeExec implements the Hook interface.
func (f HookFunc) BeforeExec(addr uint16) {
	f(addr)
}

// hookSlot is registered with the native core once, for the lifetime of the
// instance. Changing the hook means changing the contents of the slot, so the
// native core never holds on to a Hook that has been replaced.
type hookSlot struct {
	hook Hook
}

// BeforeExec implements the abi.Hook interface.
func (s *hookSlot) BeforeExec(addr uint16) {
	if s.hook != nil {
		s.hook.BeforeExec(addr)
	}
}

func (s *hookSlot) set(hook Hook) {
	// a nil function wrapped in the Hook interface is not nil
	if f, ok := hook.(HookFunc); ok && f == nil {
		hook = nil
	}
	s.hook = hook
}

// SetHook installs the Hook, replacing any previous Hook. A nil value removes
// the Hook.
func (ins *Instance) SetHook(hook Hook) {
	ins.assertLive()
	ins.slot.set(hook)
}
