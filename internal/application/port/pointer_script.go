package port

import (
	"context"

	"github.com/bnema/subdivide/internal/domain/entity"
)

// PointerScriptLoader reads recorded pointer scripts.
type PointerScriptLoader interface {
	// Load reads and validates the script at path.
	Load(ctx context.Context, path string) (*entity.PointerScript, error)
}
