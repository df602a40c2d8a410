package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled one.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags the context logger with the emitting layer
// (controller, replay, config).
func WithComponent(ctx context.Context, component string) context.Context {
	return derive(ctx, func(c zerolog.Context) zerolog.Context { return c.Str("component", component) })
}

// WithPaneID tags entries about a split preview or commit on one pane.
func WithPaneID(ctx context.Context, paneID uint64) context.Context {
	return derive(ctx, func(c zerolog.Context) zerolog.Context { return c.Uint64("pane_id", paneID) })
}

// WithSplitID tags entries about a divider drag.
func WithSplitID(ctx context.Context, splitID uint64) context.Context {
	return derive(ctx, func(c zerolog.Context) zerolog.Context { return c.Uint64("split_id", splitID) })
}

// WithSession tags every entry of one pointer gesture, from press to release.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return derive(ctx, func(c zerolog.Context) zerolog.Context { return c.Str("session", sessionID) })
}

func derive(ctx context.Context, with func(zerolog.Context) zerolog.Context) context.Context {
	return WithContext(ctx, with(FromContext(ctx).With()).Logger())
}
