package chip8

// Quirks selects between documented divergences of historical CHIP-8
// interpreters. The zero value matches the most widely documented
// behavior: shifts operate on Vx and the load/store opcodes leave I
// unchanged. ROMs written against the original COSMAC VIP interpreter
// may need the variant behavior instead.
type Quirks struct {
	// ShiftVY makes 8xy6/8xyE shift the value of Vy into Vx instead of
	// shifting Vx in place.
	ShiftVY bool

	// LoadStoreIncrementI makes Fx55/Fx65 advance I past the copied
	// register range instead of leaving it unchanged.
	LoadStoreIncrementI bool
}
