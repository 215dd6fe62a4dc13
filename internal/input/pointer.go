// Package input turns pointer press, move and release events into the
// cursor the simulation reads each tick.
package input

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/particle-rings/internal/sim"
)

type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Pointer tracks one pointer. The cursor sits at sim.Sentinel while Idle.
type Pointer struct {
	state  State
	cursor r2.Vec
	view   Viewport
}

func NewPointer(view Viewport) *Pointer {
	return &Pointer{state: Idle, cursor: sim.Sentinel, view: view}
}

// SetViewport updates the device-to-canvas mapping after a resize.
func (p *Pointer) SetViewport(v Viewport) { p.view = v }

func (p *Pointer) Viewport() Viewport { return p.view }

// Press starts a drag at the device coordinate.
func (p *Pointer) Press(x, y float64) {
	p.state = Dragging
	p.cursor = p.view.ToCanvas(x, y)
}

// Move updates the cursor while dragging and is ignored otherwise.
func (p *Pointer) Move(x, y float64) {
	if p.state != Dragging {
		return
	}
	p.cursor = p.view.ToCanvas(x, y)
}

// Release ends the drag and parks the cursor at the sentinel.
func (p *Pointer) Release() {
	p.state = Idle
	p.cursor = sim.Sentinel
}

func (p *Pointer) State() State { return p.state }

// Input is the value handed to sim.System.Step.
func (p *Pointer) Input() sim.Input {
	return sim.Input{Cursor: p.cursor}
}
