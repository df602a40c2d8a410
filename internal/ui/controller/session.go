package controller

import (
	"context"

	"github.com/bnema/subdivide/internal/application/port"
	"github.com/bnema/subdivide/internal/domain/entity"
	"github.com/bnema/subdivide/internal/domain/partition"
)

// SessionFactory implements port.PointerSessionFactory with an
// InteractionController per session.
type SessionFactory struct {
	options Options
}

// NewSessionFactory creates a factory whose sessions use opts; the canvas is
// replaced by each session's own.
func NewSessionFactory(opts Options) *SessionFactory {
	return &SessionFactory{options: opts}
}

// NewSession binds a controller to tree over canvas.
func (f *SessionFactory) NewSession(ctx context.Context, tree *partition.Tree, canvas entity.ScriptCanvas) port.PointerSession {
	opts := f.options
	opts.Canvas = Bounds{X: canvas.X, Y: canvas.Y, W: canvas.Width, H: canvas.Height}
	return &pointerSession{controller: NewInteractionController(ctx, tree, opts)}
}

type pointerSession struct {
	controller *InteractionController
}

func (s *pointerSession) PointerDown(x, y float64, split bool) string {
	return s.controller.PointerDown(x, y, Modifiers{Split: split}).String()
}

func (s *pointerSession) PointerMove(x, y float64) string {
	return s.controller.PointerMove(x, y).String()
}

func (s *pointerSession) PointerUp(x, y float64) string {
	return s.controller.PointerUp(x, y).String()
}

func (s *pointerSession) PointerCancel() string {
	return s.controller.PointerCancel().String()
}
