package input

import "gonum.org/v1/gonum/spatial/r2"

// Viewport fits the logical canvas into the device surface, keeping the
// aspect ratio and centering the result.
type Viewport struct {
	CanvasW, CanvasH float64
	DeviceW, DeviceH float64
}

// Scale is device pixels per canvas unit.
func (v Viewport) Scale() float64 {
	if v.CanvasW <= 0 || v.CanvasH <= 0 || v.DeviceW <= 0 || v.DeviceH <= 0 {
		return 1
	}
	return min(v.DeviceW/v.CanvasW, v.DeviceH/v.CanvasH)
}

// Offset is the device position of the canvas origin.
func (v Viewport) Offset() r2.Vec {
	s := v.Scale()
	return r2.Vec{
		X: (v.DeviceW - v.CanvasW*s) / 2,
		Y: (v.DeviceH - v.CanvasH*s) / 2,
	}
}

// ToCanvas maps a device coordinate into canvas space.
func (v Viewport) ToCanvas(x, y float64) r2.Vec {
	off := v.Offset()
	s := v.Scale()
	return r2.Vec{X: (x - off.X) / s, Y: (y - off.Y) / s}
}

// ToDevice maps a canvas coordinate onto the device.
func (v Viewport) ToDevice(p r2.Vec) r2.Vec {
	return r2.Add(v.Offset(), r2.Scale(v.Scale(), p))
}
