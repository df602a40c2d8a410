package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/subdivide/internal/application/port"
	"github.com/bnema/subdivide/internal/domain/entity"
)

// ErrUnknownSection is returned when a section filter matches none of the
// sections the provider knows about.
var ErrUnknownSection = errors.New("unknown config section")

type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{provider: provider}
}

type GetConfigSchemaInput struct {
	// Section keeps only keys of that section (case-insensitive); empty keeps all.
	Section string
}

type GetConfigSchemaOutput struct {
	Keys []entity.ConfigKeyInfo
}

// Execute returns the schema, optionally narrowed to one section.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, input GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	keys := uc.provider.GetSchema()
	if input.Section == "" || len(keys) == 0 {
		return &GetConfigSchemaOutput{Keys: keys}, nil
	}

	var (
		filtered []entity.ConfigKeyInfo
		known    []string
	)
	for _, key := range keys {
		if strings.EqualFold(key.Section, input.Section) {
			filtered = append(filtered, key)
		}
		if len(known) == 0 || known[len(known)-1] != key.Section {
			known = append(known, key.Section)
		}
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("%w %q (valid: %s)", ErrUnknownSection, input.Section, strings.Join(known, ", "))
	}
	return &GetConfigSchemaOutput{Keys: filtered}, nil
}
