package input

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/particle-rings/internal/sim"
)

func TestViewportFit(t *testing.T) {
	tests := []struct {
		name       string
		view       Viewport
		wantScale  float64
		wantOffset r2.Vec
	}{
		{"identity", Viewport{1080, 1080, 1080, 1080}, 1, r2.Vec{}},
		{"half size square", Viewport{1080, 1080, 540, 540}, 0.5, r2.Vec{}},
		{"wide window letterboxes horizontally", Viewport{1000, 1000, 800, 400}, 0.4, r2.Vec{X: 200}},
		{"tall window letterboxes vertically", Viewport{1000, 500, 500, 500}, 0.5, r2.Vec{Y: 125}},
		{"empty device", Viewport{1080, 1080, 0, 0}, 1, r2.Vec{X: -540, Y: -540}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.wantScale, tt.view.Scale(), 1e-12)
			off := tt.view.Offset()
			require.InDelta(t, tt.wantOffset.X, off.X, 1e-12)
			require.InDelta(t, tt.wantOffset.Y, off.Y, 1e-12)
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := Viewport{CanvasW: 1080, CanvasH: 1080, DeviceW: 1280, DeviceH: 720}
	p := r2.Vec{X: 123, Y: 987}
	d := v.ToDevice(p)
	back := v.ToCanvas(d.X, d.Y)
	require.InDelta(t, p.X, back.X, 1e-9)
	require.InDelta(t, p.Y, back.Y, 1e-9)

	center := v.ToCanvas(640, 360)
	require.InDelta(t, 540, center.X, 1e-9)
	require.InDelta(t, 540, center.Y, 1e-9)
}

func TestPointerStateMachine(t *testing.T) {
	p := NewPointer(Viewport{CanvasW: 1080, CanvasH: 1080, DeviceW: 540, DeviceH: 540})
	require.Equal(t, Idle, p.State())
	require.Equal(t, sim.Idle, p.Input())

	// Moves without a press are ignored.
	p.Move(10, 10)
	require.Equal(t, Idle, p.State())
	require.Equal(t, sim.Sentinel, p.Input().Cursor)

	p.Press(270, 270)
	require.Equal(t, Dragging, p.State())
	require.Equal(t, r2.Vec{X: 540, Y: 540}, p.Input().Cursor)

	p.Move(100, 50)
	require.Equal(t, r2.Vec{X: 200, Y: 100}, p.Input().Cursor)

	p.Release()
	require.Equal(t, Idle, p.State())
	require.Equal(t, sim.Idle, p.Input())
}

func TestPointerResize(t *testing.T) {
	p := NewPointer(Viewport{CanvasW: 100, CanvasH: 100, DeviceW: 100, DeviceH: 100})
	p.SetViewport(Viewport{CanvasW: 100, CanvasH: 100, DeviceW: 200, DeviceH: 200})
	require.Equal(t, 200.0, p.Viewport().DeviceW)

	p.Press(200, 0)
	require.Equal(t, r2.Vec{X: 100, Y: 0}, p.Input().Cursor)
}

func TestStateString(t *testing.T) {
	require.Equal(t, "idle", Idle.String())
	require.Equal(t, "dragging", Dragging.String())
	require.Equal(t, "unknown", State(9).String())
}
