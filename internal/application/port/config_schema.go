package port

import "github.com/bnema/subdivide/internal/domain/entity"

// ConfigSchemaProvider lists every setting subdivide understands, grouped by
// section (Layout, Interaction, Logging, Appearance) in display order.
type ConfigSchemaProvider interface {
	GetSchema() []entity.ConfigKeyInfo
}
