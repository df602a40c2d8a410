package port

import (
	"context"

	"github.com/bnema/subdivide/internal/domain/entity"
	"github.com/bnema/subdivide/internal/domain/partition"
)

// PointerSession feeds pointer events, in host units, to an interaction
// state machine bound to one layout. Each call returns a short outcome name.
type PointerSession interface {
	PointerDown(x, y float64, split bool) string
	PointerMove(x, y float64) string
	PointerUp(x, y float64) string
	PointerCancel() string
}

// PointerSessionFactory binds pointer sessions to layouts.
type PointerSessionFactory interface {
	NewSession(ctx context.Context, tree *partition.Tree, canvas entity.ScriptCanvas) PointerSession
}
