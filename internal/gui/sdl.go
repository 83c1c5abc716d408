// Package gui implements the rendering, input and audio frontends.
package gui

import (
	"fmt"

	"github.com/retroenv/chip8go/internal/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "chip8go"

// Audio parameters of the beep tone.
const (
	audioFrequency = 44100
	toneFrequency  = 440
	toneAmplitude  = 24
	audioSamples   = 1024
)

// SDL is the graphical frontend. It renders the framebuffer into a
// streaming texture, maps the keyboard rows 1234/QWER/ASDF/ZXCV onto the
// hex keypad and plays a square wave while the sound timer runs.
type SDL struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	audio sdl.AudioDeviceID
	tone  []byte

	soundActive bool
}

// NewSDL initializes SDL and opens the emulator window at the given
// scale factor.
func NewSDL(scale int) (*SDL, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("initializing SDL: %w", err)
	}

	window, err := sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(chip8.DisplayWidth*scale), int32(chip8.DisplayHeight*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING, chip8.DisplayWidth, chip8.DisplayHeight)
	if err != nil {
		return nil, fmt.Errorf("creating texture: %w", err)
	}

	gui := &SDL{
		window:   window,
		renderer: renderer,
		texture:  texture,
	}

	if err := gui.openAudio(); err != nil {
		return nil, err
	}
	return gui, nil
}

// openAudio opens the audio device paused and precomputes one square
// wave buffer that gets requeued while the tone plays.
func (s *SDL) openAudio() error {
	spec := &sdl.AudioSpec{
		Freq:     audioFrequency,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  audioSamples,
	}

	var actualSpec sdl.AudioSpec
	id, err := sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return fmt.Errorf("opening audio device: %w", err)
	}
	s.audio = id

	// one tenth of a second of square wave
	period := audioFrequency / toneFrequency
	s.tone = make([]byte, audioFrequency/10)
	for i := range s.tone {
		if i%period < period/2 {
			s.tone[i] = 128 + toneAmplitude
		} else {
			s.tone[i] = 128 - toneAmplitude
		}
	}
	return nil
}

// Poll processes pending SDL events, forwarding key transitions to the
// keypad. Returns true when the window is closed or escape is pressed.
func (s *SDL) Poll(sys *chip8.System) bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			if ev.Keysym.Sym == sdl.K_ESCAPE {
				return true
			}
			if key, ok := mapKey(ev.Keysym.Sym); ok {
				sys.SetKey(key, ev.Type == sdl.KEYDOWN)
			}
		}
	}
	return false
}

// Render uploads the framebuffer into the streaming texture and
// presents it.
func (s *SDL) Render(display *chip8.Display) error {
	if err := s.texture.UpdateRGBA(nil, display.Framebuffer(), chip8.DisplayWidth); err != nil {
		return fmt.Errorf("updating texture: %w", err)
	}
	if err := s.renderer.Copy(s.texture, nil, nil); err != nil {
		return fmt.Errorf("copying texture: %w", err)
	}
	s.renderer.Present()
	return nil
}

// SetSound starts or stops the beep tone. While active the tone buffer
// is requeued before the device runs dry.
func (s *SDL) SetSound(active bool) {
	if active {
		if sdl.GetQueuedAudioSize(s.audio) < uint32(len(s.tone)) {
			// an underrun here only shortens the beep
			_ = sdl.QueueAudio(s.audio, s.tone)
		}
		sdl.PauseAudioDevice(s.audio, false)
		s.soundActive = true
		return
	}

	if s.soundActive {
		sdl.PauseAudioDevice(s.audio, true)
		sdl.ClearQueuedAudio(s.audio)
		s.soundActive = false
	}
}

// Close destroys the window and shuts SDL down.
func (s *SDL) Close() error {
	sdl.CloseAudioDevice(s.audio)
	_ = s.texture.Destroy()
	_ = s.renderer.Destroy()
	_ = s.window.Destroy()
	sdl.Quit()
	return nil
}

// mapKey translates a host key to the hex keypad layout:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   =>   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
//
// nolint:cyclop
func mapKey(sym sdl.Keycode) (byte, bool) {
	switch sym {
	case sdl.K_1:
		return 0x1, true
	case sdl.K_2:
		return 0x2, true
	case sdl.K_3:
		return 0x3, true
	case sdl.K_4:
		return 0xC, true
	case sdl.K_q:
		return 0x4, true
	case sdl.K_w:
		return 0x5, true
	case sdl.K_e:
		return 0x6, true
	case sdl.K_r:
		return 0xD, true
	case sdl.K_a:
		return 0x7, true
	case sdl.K_s:
		return 0x8, true
	case sdl.K_d:
		return 0x9, true
	case sdl.K_f:
		return 0xE, true
	case sdl.K_z:
		return 0xA, true
	case sdl.K_x:
		return 0x0, true
	case sdl.K_c:
		return 0xB, true
	case sdl.K_v:
		return 0xF, true
	}
	return 0, false
}
