package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type scopeKey struct{}

// Scope is the run state attached to log events written with a context. Empty
// fields are omitted from the event.
type Scope struct {
	Command string // subcommand being run
	Config  string // config file path
	Path    string // project file or dir being processed
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (s Scope) MarshalZerologObject(e *zerolog.Event) {
	if s.Command != "" {
		e.Str("command", s.Command)
	}
	if s.Config != "" {
		e.Str("config", s.Config)
	}
	if s.Path != "" {
		e.Str("path", s.Path)
	}
}

// IsZero reports whether no field is set.
func (s Scope) IsZero() bool {
	return s == Scope{}
}

// ScopeFrom returns the scope stored in ctx, or the zero Scope.
func ScopeFrom(ctx context.Context) Scope {
	if ctx == nil {
		return Scope{}
	}
	s, _ := ctx.Value(scopeKey{}).(Scope)
	return s
}

func withScope(ctx context.Context, update func(*Scope)) context.Context {
	s := ScopeFrom(ctx)
	update(&s)
	return context.WithValue(ctx, scopeKey{}, s)
}

// WithCommand sets the running command name.
func WithCommand(ctx context.Context, command string) context.Context {
	return withScope(ctx, func(s *Scope) { s.Command = command })
}

// WithConfig sets the loaded config file path.
func WithConfig(ctx context.Context, path string) context.Context {
	return withScope(ctx, func(s *Scope) { s.Config = path })
}

// WithPath sets the project file or directory being processed.
func WithPath(ctx context.Context, path string) context.Context {
	return withScope(ctx, func(s *Scope) { s.Path = path })
}
