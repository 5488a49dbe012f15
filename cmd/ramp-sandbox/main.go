package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/guptarohit/asciigraph"

	"github.com/lixenwraith/bounce/audio"
	"github.com/lixenwraith/bounce/engine"
	"github.com/lixenwraith/bounce/parameter"
	"github.com/lixenwraith/bounce/render"
	"github.com/lixenwraith/bounce/vmath"
)

const (
	traceSamples = 90
	traceHeight  = 8
	traceWidth   = 30
	nudgeStep    = 8.0
	tiltStep     = 1.0
	gravityUp    = 1.25
	gravityDown  = 0.8
)

type Sandbox struct {
	screen tcell.Screen
	sim    *engine.Sim
	player *audio.Player

	paused bool

	// Vertical velocity trace for the side graph
	history []float64

	frames   uint64
	bounces  uint64
	respawns uint64
}

func NewSandbox() (*Sandbox, error) {
	sim, err := engine.NewSim(parameter.Load())
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}

	s := &Sandbox{
		screen:  screen,
		sim:     sim,
		player:  audio.NewPlayer(),
		history: make([]float64, 0, traceSamples),
	}

	// Non-fatal, sandbox can run without sound
	if err := s.player.Init(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}

	return s, nil
}

func (s *Sandbox) step() {
	res := s.sim.Step(s.sim.Params().DT())
	s.frames++

	if res.Bounced {
		s.bounces++
		s.player.Bounce(res.ImpactSpeed)
	}
	if res.Exited {
		s.respawn()
	}

	s.history = append(s.history, s.sim.Ball().Vel.Y)
	if len(s.history) > traceSamples {
		s.history = s.history[len(s.history)-traceSamples:]
	}
}

func (s *Sandbox) respawn() {
	s.sim.Respawn()
	s.respawns++
	s.player.Respawned()
}

// tiltRamp moves the ramp's free end vertically, pivoting around its start
func (s *Sandbox) tiltRamp(dy float64) {
	ramp := s.sim.Ramp()
	end := ramp.End
	end.Y += dy
	if err := s.sim.SetRamp(ramp.Start, end); err != nil {
		return
	}
}

func (s *Sandbox) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyUp:
			s.sim.Nudge(vmath.Vec2{Y: -nudgeStep})
		case ev.Key() == tcell.KeyDown:
			s.sim.Nudge(vmath.Vec2{Y: nudgeStep})
		case ev.Key() == tcell.KeyLeft:
			s.sim.Nudge(vmath.Vec2{X: -nudgeStep})
		case ev.Key() == tcell.KeyRight:
			s.sim.Nudge(vmath.Vec2{X: nudgeStep})
		case ev.Key() == tcell.KeyRune:
			return s.handleRune(ev.Rune())
		}

	case *tcell.EventResize:
		s.screen.Sync()
	}

	return true
}

func (s *Sandbox) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case ' ':
		s.paused = !s.paused
	case 'n':
		// Single step only makes sense while paused
		if s.paused {
			s.step()
		}
	case '[':
		s.tiltRamp(tiltStep)
	case ']':
		s.tiltRamp(-tiltStep)
	case '-':
		s.sim.ScaleGravity(gravityDown)
	case '=', '+':
		s.sim.ScaleGravity(gravityUp)
	case 'r':
		s.respawn()
	}

	return true
}

func (s *Sandbox) draw() {
	s.screen.Clear()

	// Canvas sits under a one-line status bar
	canvasStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	scan := render.NewRowPairScanner(s.sim.Grid())
	for y := 1; scan.Scan(); y++ {
		for x, b := range scan.Bytes() {
			s.screen.SetContent(x, y, rune(b), nil, canvasStyle)
		}
	}

	s.drawStatus()
	s.drawTrace()
	s.drawHelp()

	s.screen.Show()
}

func (s *Sandbox) drawStatus() {
	ball := s.sim.Ball()
	state := "running"
	if s.paused {
		state = "paused"
	}

	status := fmt.Sprintf("[%s] frames=%d bounces=%d respawns=%d gravity=%.0f ball=(%.1f, %.1f) vel=(%.1f, %.1f)",
		state, s.frames, s.bounces, s.respawns, s.sim.Params().Gravity,
		ball.Pos.X, ball.Pos.Y, ball.Vel.X, ball.Vel.Y)
	s.drawText(0, 0, status, tcell.StyleDefault.Foreground(tcell.ColorYellow))
}

func (s *Sandbox) drawTrace() {
	if len(s.history) < 2 {
		return
	}

	chart := asciigraph.Plot(s.history,
		asciigraph.Height(traceHeight),
		asciigraph.Width(traceWidth),
		asciigraph.Caption("vertical velocity"))

	x := s.sim.Grid().Width() + 2
	for i, line := range strings.Split(chart, "\n") {
		s.drawText(x, 1+i, line, tcell.StyleDefault.Foreground(tcell.ColorBlue))
	}
}

func (s *Sandbox) drawHelp() {
	help := "space pause | n step | arrows nudge | [ ] tilt ramp | - = gravity | r respawn | q quit"
	y := s.sim.Grid().Height()/2 + 2
	s.drawText(0, y, help, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

func (s *Sandbox) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (s *Sandbox) run() {
	ticker := time.NewTicker(s.sim.Params().FrameInterval())
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- s.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !s.handleInput(ev) {
				return
			}

		case <-ticker.C:
			if !s.paused {
				s.step()
			}
			s.draw()
		}
	}
}

func (s *Sandbox) cleanup() {
	s.player.Close()
	s.screen.Fini()
}

func main() {
	sandbox, err := NewSandbox()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer sandbox.cleanup()

	sandbox.run()
}
