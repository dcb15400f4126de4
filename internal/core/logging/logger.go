// Package logging provides component loggers that pick up the run Scope from
// the context passed to Ctx.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component returns the global logger tagged with cmp=name.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger().Hook(ScopeHook{})
}
