package chip8

// System wires the machine components together and exposes the surface
// the host loop and the frontends work against. The host drives Step at
// its configured instruction rate and TickTimers at a steady 60 Hz, the
// input collaborator writes keys through SetKey, the renderer reads the
// display and the audio collaborator polls SoundTimer.
type System struct {
	memory  *Memory
	display *Display
	keypad  *Keypad
	delay   Timer
	sound   Timer
	cpu     *CPU

	// rom keeps the loaded program image so Reset can restore it.
	rom []byte
}

// New returns a powered-on system with no program loaded.
func New(quirks Quirks) *System {
	s := &System{
		memory:  NewMemory(),
		display: NewDisplay(),
		keypad:  NewKeypad(),
	}
	s.cpu = NewCPU(s.memory, s.display, s.keypad, &s.delay, &s.sound, quirks)
	return s
}

// Load copies a program image into memory at ProgramStart and keeps it
// for later resets. Returns ErrROMTooLarge if the image does not fit.
func (s *System) Load(rom []byte) error {
	if err := s.memory.LoadROM(rom); err != nil {
		return err
	}
	s.rom = append([]byte(nil), rom...)
	return nil
}

// Reset restores the machine to its power-on state and reloads the
// current program image. Registers, stack, timers, display and keypad
// are cleared, execution restarts at ProgramStart.
func (s *System) Reset() {
	s.memory.Reset()
	s.display.Clear()
	s.keypad.Reset()
	s.delay.Set(0)
	s.sound.Set(0)
	s.cpu.Reset()

	if s.rom != nil {
		// the image was size-checked when it was first loaded
		_ = s.memory.LoadROM(s.rom)
	}
}

// Step executes exactly one fetch-decode-execute cycle, or advances the
// key-wait state if the CPU is blocked on the Fx0A opcode.
func (s *System) Step() error {
	return s.cpu.Step()
}

// TickTimers decrements the delay and sound timers once. The host calls
// this at a steady 60 Hz, independent of the instruction rate.
func (s *System) TickTimers() {
	s.delay.Tick()
	s.sound.Tick()
}

// Display returns the framebuffer for rendering.
func (s *System) Display() *Display {
	return s.display
}

// SetKey records the state of a keypad key. This is the input
// collaborator's sole write entry point.
func (s *System) SetKey(index byte, pressed bool) {
	s.keypad.SetKey(index, pressed)
}

// SoundTimer returns the current sound timer value. The audio
// collaborator emits a tone while it is non-zero.
func (s *System) SoundTimer() uint8 {
	return s.sound.Value()
}

// DelayTimer returns the current delay timer value.
func (s *System) DelayTimer() uint8 {
	return s.delay.Value()
}

// CPU returns the processor, used by debug tracing and tests.
func (s *System) CPU() *CPU {
	return s.cpu
}

// PeekOpcode returns the address and opcode word the next Step will
// execute, without advancing the machine.
func (s *System) PeekOpcode() (address, opcode uint16) {
	address = s.cpu.PC()
	opcode = uint16(s.memory.Read(address))<<8 | uint16(s.memory.Read(address+1))
	return address, opcode
}
