package chip8

import (
	"errors"
	"fmt"
)

// Errors returned by the virtual machine core. ErrROMTooLarge is
// recoverable, the caller can reject the ROM and keep running. Stack
// errors are fatal to the running program but not to the host, which may
// reset the machine and continue.
var (
	// ErrROMTooLarge is returned when a program image exceeds the
	// user program space.
	ErrROMTooLarge = errors.New("ROM image exceeds program memory")

	// ErrStackOverflow is returned when a call exceeds the stack depth.
	ErrStackOverflow = errors.New("call stack overflow")

	// ErrStackUnderflow is returned when returning with an empty stack.
	ErrStackUnderflow = errors.New("call stack underflow")
)

// IllegalInstructionError is returned when an opcode word does not decode
// to any known instruction. The caller decides whether to halt or skip,
// halting is the recommended default.
type IllegalInstructionError struct {
	Opcode  uint16 // the undecodable opcode word
	Address uint16 // the address the word was fetched from
}

func (e IllegalInstructionError) Error() string {
	return fmt.Sprintf("illegal instruction $%04X at address $%03X", e.Opcode, e.Address)
}
