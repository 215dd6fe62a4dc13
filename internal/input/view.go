package input

import "gonum.org/v1/gonum/spatial/r2"

// View is the draw transform: the canvas is scaled by Zoom about its
// center, then fitted into the viewport. It is a uniform scale followed by a
// translation, so Apply(p) == Origin() + Factor()*p.
type View struct {
	Viewport Viewport
	Zoom     float64
}

func (v View) center() r2.Vec {
	return r2.Vec{X: v.Viewport.CanvasW / 2, Y: v.Viewport.CanvasH / 2}
}

// Apply maps a canvas point to device pixels.
func (v View) Apply(p r2.Vec) r2.Vec {
	c := v.center()
	return v.Viewport.ToDevice(r2.Add(c, r2.Scale(v.Zoom, r2.Sub(p, c))))
}

// Factor is the device length of one canvas unit. Circle radii are
// multiplied by it.
func (v View) Factor() float64 {
	return v.Zoom * v.Viewport.Scale()
}

// Origin is where the canvas origin lands on the device.
func (v View) Origin() r2.Vec {
	return v.Apply(r2.Vec{})
}
