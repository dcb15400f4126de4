package logging

import "github.com/rs/zerolog"

// ScopeHook embeds the Scope of an event's context into the event.
type ScopeHook struct{}

func (ScopeHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	if s := ScopeFrom(e.GetCtx()); !s.IsZero() {
		e.EmbedObject(s)
	}
}
