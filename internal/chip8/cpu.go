package chip8

import "math/rand"

// stackDepth is the historical call stack depth. Exceeding it is a fatal
// interpreter error.
const stackDepth = 16

// flagRegister is VF, used for carry, borrow, shift and collision flags.
const flagRegister = 0xF

// CPU executes the fetch-decode-execute cycle. It owns the register file
// and mutates memory, display and timers through opcode execution only.
// Besides normal execution it has one other mode: waiting for a key after
// the Fx0A opcode, during which Step does not advance the program
// counter.
type CPU struct {
	v  [16]uint8          // general purpose registers V0-VF
	i  uint16             // index register
	pc uint16             // program counter
	sp int                // stack pointer, points at the next free slot
	st [stackDepth]uint16 // call stack of return addresses

	waiting bool // set while blocked on the key-wait opcode
	waitReg byte // register the awaited key is stored into

	memory  *Memory
	display *Display
	keypad  *Keypad
	delay   *Timer
	sound   *Timer

	quirks Quirks
	random func() byte
}

// NewCPU returns a CPU operating on the given components, with the
// program counter at ProgramStart.
func NewCPU(memory *Memory, display *Display, keypad *Keypad, delay, sound *Timer, quirks Quirks) *CPU {
	return &CPU{
		pc:      ProgramStart,
		memory:  memory,
		display: display,
		keypad:  keypad,
		delay:   delay,
		sound:   sound,
		quirks:  quirks,
		random: func() byte {
			return byte(rand.Intn(256))
		},
	}
}

// SetRandomSource replaces the random byte source used by the Cxkk
// opcode. The source must be uniform over 0-255.
func (c *CPU) SetRandomSource(random func() byte) {
	c.random = random
}

// PC returns the current program counter.
func (c *CPU) PC() uint16 {
	return c.pc
}

// Register returns the value of general purpose register Vx.
func (c *CPU) Register(x byte) uint8 {
	return c.v[x&0x0F]
}

// Index returns the value of the index register I.
func (c *CPU) Index() uint16 {
	return c.i
}

// Waiting returns whether the CPU is blocked on the key-wait opcode.
func (c *CPU) Waiting() bool {
	return c.waiting
}

// Reset restores the CPU to its power-on state. Memory, display, keypad
// and timer state are owned by their components and reset separately.
func (c *CPU) Reset() {
	c.v = [16]uint8{}
	c.i = 0
	c.pc = ProgramStart
	c.sp = 0
	c.st = [stackDepth]uint16{}
	c.waiting = false
	c.waitReg = 0
}

// Step executes one fetch-decode-execute cycle. While waiting for a key
// it instead checks the keypad for a new key-down transition and resumes
// normal execution once one arrives.
func (c *CPU) Step() error {
	if c.waiting {
		key, ok := c.keypad.consumePress()
		if !ok {
			return nil
		}
		c.v[c.waitReg] = key
		c.waiting = false
		c.pc += 2
		return nil
	}

	opcode := uint16(c.memory.Read(c.pc))<<8 | uint16(c.memory.Read(c.pc+1))

	// PC is advanced before dispatch so jump and call opcodes can set it
	// directly and that value is authoritative.
	c.pc += 2

	return c.execute(opcode)
}

// nolint:funlen,cyclop
func (c *CPU) execute(opcode uint16) error {
	x := byte((opcode & 0x0F00) >> 8)
	y := byte(opcode&0x00F0) >> 4
	n := byte(opcode & 0x000F)
	kk := byte(opcode & 0x00FF)
	nnn := opcode & 0x0FFF

	switch opcode & 0xF000 {
	case 0x0000:
		switch opcode {
		case 0x00E0: // CLS
			c.display.Clear()

		case 0x00EE: // RET
			return c.stackPop()

		default:
			return c.illegal(opcode)
		}

	case 0x1000: // JP addr
		c.pc = nnn

	case 0x2000: // CALL addr
		if err := c.stackPush(c.pc); err != nil {
			return err
		}
		c.pc = nnn

	case 0x3000: // SE Vx, byte
		if c.v[x] == kk {
			c.pc += 2
		}

	case 0x4000: // SNE Vx, byte
		if c.v[x] != kk {
			c.pc += 2
		}

	case 0x5000: // SE Vx, Vy
		if n != 0 {
			return c.illegal(opcode)
		}
		if c.v[x] == c.v[y] {
			c.pc += 2
		}

	case 0x6000: // LD Vx, byte
		c.v[x] = kk

	case 0x7000: // ADD Vx, byte - wraps, VF untouched
		c.v[x] += kk

	case 0x8000:
		return c.executeALU(opcode, x, y)

	case 0x9000: // SNE Vx, Vy
		if n != 0 {
			return c.illegal(opcode)
		}
		if c.v[x] != c.v[y] {
			c.pc += 2
		}

	case 0xA000: // LD I, addr
		c.i = nnn

	case 0xB000: // JP V0, addr
		c.pc = nnn + uint16(c.v[0])

	case 0xC000: // RND Vx, byte
		c.v[x] = c.random() & kk

	case 0xD000: // DRW Vx, Vy, nibble
		sprite := make([]byte, n)
		for row := range sprite {
			sprite[row] = c.memory.Read(c.i + uint16(row))
		}
		if c.display.DrawSprite(c.v[x], c.v[y], sprite) {
			c.v[flagRegister] = 1
		} else {
			c.v[flagRegister] = 0
		}

	case 0xE000:
		switch kk {
		case 0x9E: // SKP Vx
			if c.keypad.KeyDown(c.v[x]) {
				c.pc += 2
			}

		case 0xA1: // SKNP Vx
			if !c.keypad.KeyDown(c.v[x]) {
				c.pc += 2
			}

		default:
			return c.illegal(opcode)
		}

	case 0xF000:
		return c.executeMisc(opcode, x, kk)
	}

	return nil
}

// executeALU handles the 8xyN register-to-register operations.
func (c *CPU) executeALU(opcode uint16, x, y byte) error {
	switch opcode & 0x000F {
	case 0x0: // LD Vx, Vy
		c.v[x] = c.v[y]

	case 0x1: // OR Vx, Vy
		c.v[x] |= c.v[y]

	case 0x2: // AND Vx, Vy
		c.v[x] &= c.v[y]

	case 0x3: // XOR Vx, Vy
		c.v[x] ^= c.v[y]

	case 0x4: // ADD Vx, Vy - VF is carry
		sum := uint16(c.v[x]) + uint16(c.v[y])
		c.v[x] = uint8(sum)
		c.setFlag(sum > 0xFF)

	case 0x5: // SUB Vx, Vy - VF is 1 when no borrow occurs
		noBorrow := c.v[x] >= c.v[y]
		c.v[x] -= c.v[y]
		c.setFlag(noBorrow)

	case 0x6: // SHR Vx - VF is the bit shifted out
		value := c.v[x]
		if c.quirks.ShiftVY {
			value = c.v[y]
		}
		c.v[x] = value >> 1
		c.setFlag(value&0x01 == 0x01)

	case 0x7: // SUBN Vx, Vy - VF is 1 when no borrow occurs
		noBorrow := c.v[y] >= c.v[x]
		c.v[x] = c.v[y] - c.v[x]
		c.setFlag(noBorrow)

	case 0xE: // SHL Vx - VF is the bit shifted out
		value := c.v[x]
		if c.quirks.ShiftVY {
			value = c.v[y]
		}
		c.v[x] = value << 1
		c.setFlag(value&0x80 == 0x80)

	default:
		return c.illegal(opcode)
	}

	return nil
}

// executeMisc handles the Fxkk opcode family.
func (c *CPU) executeMisc(opcode uint16, x, kk byte) error {
	switch kk {
	case 0x07: // LD Vx, DT
		c.v[x] = c.delay.Value()

	case 0x0A: // LD Vx, K - block until the next key-down transition
		c.waiting = true
		c.waitReg = x
		// stale transitions from before the wait must not satisfy it
		c.keypad.discardPress()
		// hold the PC on this instruction until a key arrives
		c.pc -= 2

	case 0x15: // LD DT, Vx
		c.delay.Set(c.v[x])

	case 0x18: // LD ST, Vx
		c.sound.Set(c.v[x])

	case 0x1E: // ADD I, Vx
		c.i += uint16(c.v[x])

	case 0x29: // LD F, Vx
		c.i = c.memory.FontAddress(c.v[x])

	case 0x33: // LD B, Vx - BCD digits into memory[I..I+2]
		value := c.v[x]
		c.memory.Write(c.i, value/100)
		c.memory.Write(c.i+1, value/10%10)
		c.memory.Write(c.i+2, value%10)

	case 0x55: // LD [I], Vx - store V0..Vx
		for reg := byte(0); reg <= x; reg++ {
			c.memory.Write(c.i+uint16(reg), c.v[reg])
		}
		if c.quirks.LoadStoreIncrementI {
			c.i += uint16(x) + 1
		}

	case 0x65: // LD Vx, [I] - load V0..Vx
		for reg := byte(0); reg <= x; reg++ {
			c.v[reg] = c.memory.Read(c.i + uint16(reg))
		}
		if c.quirks.LoadStoreIncrementI {
			c.i += uint16(x) + 1
		}

	default:
		return c.illegal(opcode)
	}

	return nil
}

// setFlag sets VF to 1 or 0.
func (c *CPU) setFlag(set bool) {
	if set {
		c.v[flagRegister] = 1
	} else {
		c.v[flagRegister] = 0
	}
}

// illegal reports an undecodable opcode word at the address it was
// fetched from.
func (c *CPU) illegal(opcode uint16) error {
	return IllegalInstructionError{
		Opcode:  opcode,
		Address: c.pc - 2,
	}
}

func (c *CPU) stackPush(address uint16) error {
	if c.sp >= stackDepth {
		return ErrStackOverflow
	}
	c.st[c.sp] = address
	c.sp++
	return nil
}

func (c *CPU) stackPop() error {
	if c.sp == 0 {
		return ErrStackUnderflow
	}
	c.sp--
	c.pc = c.st[c.sp]
	return nil
}
