package audit

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Event struct {
	Actor    string    `json:"actor"`
	Action   string    `json:"action"`
	Entity   string    `json:"entity"`
	EntityID string    `json:"entity_id"`
	At       time.Time `json:"at"`
}

// Logger acumula a trilha em memória e espelha cada evento no log
// estruturado. Não há persistência, como todo o resto do estado.
type Logger struct {
	mu     sync.RWMutex
	events []Event
	log    zerolog.Logger
}

func New(log zerolog.Logger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) Log(ev Event) error {
	l.mu.Lock()
	l.events = append(l.events, ev)
	l.mu.Unlock()

	l.log.Info().
		Str("actor", ev.Actor).
		Str("action", ev.Action).
		Str("entity", ev.Entity).
		Str("entity_id", ev.EntityID).
		Msg("audit")

	return nil
}

func (l *Logger) Events() []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}
