package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/subdivide/internal/application/port"
	"github.com/bnema/subdivide/internal/domain/entity"
	"github.com/bnema/subdivide/internal/domain/partition"
	"github.com/bnema/subdivide/internal/logging"
)

// ErrNoScript is returned when neither a script nor a path is given.
var ErrNoScript = errors.New("no pointer script")

// ReplayPointerScriptUseCase replays recorded pointer events against a fresh
// layout and reports the resulting geometry.
type ReplayPointerScriptUseCase struct {
	loader   port.PointerScriptLoader
	sessions port.PointerSessionFactory
}

// NewReplayPointerScriptUseCase creates a new replay use case.
func NewReplayPointerScriptUseCase(loader port.PointerScriptLoader, sessions port.PointerSessionFactory) *ReplayPointerScriptUseCase {
	return &ReplayPointerScriptUseCase{
		loader:   loader,
		sessions: sessions,
	}
}

// ReplayInput contains parameters for a replay.
type ReplayInput struct {
	// Script is replayed as is; when nil, Path is read through the loader.
	Script *entity.PointerScript
	Path   string
	// MinFraction configures the fresh tree; zero means the default.
	MinFraction float64
}

// ReplayStep records what one event did.
type ReplayStep struct {
	Index   int                 `json:"index"`
	Event   entity.PointerEvent `json:"event"`
	Outcome string              `json:"outcome"`
	Panes   int                 `json:"panes"`
}

// ReplayOutput contains the result of a replay.
type ReplayOutput struct {
	Layout   partition.Layout
	Steps    []ReplayStep
	TreeDump string
}

// Execute replays the script. The tree is validated after every event; a
// violation aborts the replay with the failing event's index.
func (uc *ReplayPointerScriptUseCase) Execute(ctx context.Context, input ReplayInput) (*ReplayOutput, error) {
	log := logging.FromContext(ctx)

	script, err := uc.resolveScript(ctx, input)
	if err != nil {
		return nil, err
	}

	var opts []partition.Option
	if input.MinFraction > 0 {
		opts = append(opts, partition.WithMinFraction(input.MinFraction))
	}
	tree := partition.New(opts...)
	session := uc.sessions.NewSession(ctx, tree, script.Canvas)

	steps := make([]ReplayStep, 0, len(script.Events))
	for i, ev := range script.Events {
		outcome := dispatch(session, ev)
		if err := tree.Validate(); err != nil {
			return nil, fmt.Errorf("replay event %d (%s): %w", i, ev.Type, err)
		}
		steps = append(steps, ReplayStep{Index: i, Event: ev, Outcome: outcome, Panes: tree.Len()})
	}

	log.Debug().
		Int("events", len(script.Events)).
		Int("panes", tree.Len()).
		Msg("pointer script replayed")

	return &ReplayOutput{
		Layout:   tree.ComputeAbsoluteLayout(),
		Steps:    steps,
		TreeDump: tree.String(),
	}, nil
}

func (uc *ReplayPointerScriptUseCase) resolveScript(ctx context.Context, input ReplayInput) (*entity.PointerScript, error) {
	if input.Script != nil {
		if err := input.Script.Validate(); err != nil {
			return nil, err
		}
		return input.Script, nil
	}
	if input.Path == "" {
		return nil, ErrNoScript
	}
	script, err := uc.loader.Load(ctx, input.Path)
	if err != nil {
		return nil, fmt.Errorf("load pointer script: %w", err)
	}
	return script, nil
}

func dispatch(session port.PointerSession, ev entity.PointerEvent) string {
	switch ev.Type {
	case entity.PointerDown:
		return session.PointerDown(ev.X, ev.Y, ev.Split)
	case entity.PointerMove:
		return session.PointerMove(ev.X, ev.Y)
	case entity.PointerUp:
		return session.PointerUp(ev.X, ev.Y)
	default:
		return session.PointerCancel()
	}
}
