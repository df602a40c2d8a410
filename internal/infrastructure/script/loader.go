// Package script reads recorded pointer scripts from TOML files.
package script

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/bnema/subdivide/internal/domain/entity"
	"github.com/bnema/subdivide/internal/logging"
)

// TOMLLoader implements port.PointerScriptLoader.
type TOMLLoader struct{}

// NewTOMLLoader creates a new TOMLLoader.
func NewTOMLLoader() *TOMLLoader {
	return &TOMLLoader{}
}

// Load reads and validates the script at path.
func (l *TOMLLoader) Load(ctx context.Context, path string) (*entity.PointerScript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pointer script: %w", err)
	}

	script, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logging.FromContext(ctx).Debug().
		Str("path", path).
		Int("events", len(script.Events)).
		Msg("pointer script loaded")
	return script, nil
}

// Decode parses a TOML pointer script. Unknown keys are rejected.
func Decode(r io.Reader) (*entity.PointerScript, error) {
	var script entity.PointerScript

	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&script); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: %s", entity.ErrInvalidScript, strict.String())
		}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("%w: line %d column %d: %s", entity.ErrInvalidScript, row, col, decodeErr.Error())
		}
		return nil, fmt.Errorf("%w: %w", entity.ErrInvalidScript, err)
	}

	if err := script.Validate(); err != nil {
		return nil, err
	}
	return &script, nil
}
