package entity

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidScript wraps every pointer script validation failure.
var ErrInvalidScript = errors.New("invalid pointer script")

// PointerEventType is the kind of a recorded pointer event.
type PointerEventType string

const (
	PointerDown   PointerEventType = "down"
	PointerMove   PointerEventType = "move"
	PointerUp     PointerEventType = "up"
	PointerCancel PointerEventType = "cancel"
)

// PointerEvent is one recorded pointer event in host units.
type PointerEvent struct {
	Type PointerEventType `toml:"type" json:"type"`
	X    float64          `toml:"x" json:"x"`
	Y    float64          `toml:"y" json:"y"`
	// Split is the split-gesture modifier; only meaningful on down events.
	Split bool `toml:"split" json:"split,omitempty"`
}

// ScriptCanvas is the host rectangle the events were recorded against.
type ScriptCanvas struct {
	X      float64 `toml:"x" json:"x"`
	Y      float64 `toml:"y" json:"y"`
	Width  float64 `toml:"width" json:"width"`
	Height float64 `toml:"height" json:"height"`
}

// PointerScript is a recorded sequence of pointer events replayed against a
// fresh layout.
type PointerScript struct {
	Canvas ScriptCanvas   `toml:"canvas" json:"canvas"`
	Events []PointerEvent `toml:"events" json:"events"`
}

// Validate checks the canvas and every event.
func (s *PointerScript) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: script is nil", ErrInvalidScript)
	}
	if !(s.Canvas.Width > 0) || !(s.Canvas.Height > 0) {
		return fmt.Errorf("%w: canvas width and height must be positive (got %gx%g)",
			ErrInvalidScript, s.Canvas.Width, s.Canvas.Height)
	}
	for i, ev := range s.Events {
		switch ev.Type {
		case PointerDown, PointerMove, PointerUp, PointerCancel:
		default:
			return fmt.Errorf("%w: event %d: unknown type %q", ErrInvalidScript, i, ev.Type)
		}
		if math.IsNaN(ev.X) || math.IsNaN(ev.Y) || math.IsInf(ev.X, 0) || math.IsInf(ev.Y, 0) {
			return fmt.Errorf("%w: event %d: coordinates must be finite", ErrInvalidScript, i)
		}
	}
	return nil
}
