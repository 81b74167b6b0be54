package services

import (
	"context"
	"sync"
	"time"

	"github.com/drainwise/drainwise-backend/internal/autosave"
	"github.com/drainwise/drainwise-backend/internal/logger"
)

// ConfigSaver collapses bursts of edits to one configuration into a single
// persisted write per settle period. One debounce slot exists per
// configuration id; a new edit cancels and replaces the slot's pending
// write, so only the last state of a burst is saved. Storage failures are
// logged and swallowed: auto-save must never interrupt editing, and callers
// needing a guaranteed write use the foreground update instead.
type ConfigSaver interface {
	Queue(ownerID string, id int, payload ConfigPayload)
	Flush(id int)
	Close()
}

type configSaver struct {
	log     *logger.Logger
	configs PricingConfigService
	delay   time.Duration

	mu    sync.Mutex
	slots map[int]*autosave.Debouncer
}

func NewConfigSaver(log *logger.Logger, configs PricingConfigService, delay time.Duration) ConfigSaver {
	saverLog := log.With("service", "ConfigSaver")
	if delay <= 0 {
		delay = autosave.DefaultSettleDelay
	}
	return &configSaver{
		log:     saverLog,
		configs: configs,
		delay:   delay,
		slots:   map[int]*autosave.Debouncer{},
	}
}

func (s *configSaver) Queue(ownerID string, id int, payload ConfigPayload) {
	s.slot(id).Schedule(func() {
		// The originating request is long gone by the time the slot
		// settles, so the write runs on a background context.
		if _, err := s.configs.Update(context.Background(), ownerID, id, payload); err != nil {
			s.log.Warn("Auto-save failed, edit dropped", "id", id, "error", err)
		}
	})
}

func (s *configSaver) Flush(id int) {
	s.mu.Lock()
	d := s.slots[id]
	s.mu.Unlock()
	if d != nil {
		d.Flush()
	}
}

func (s *configSaver) Close() {
	s.mu.Lock()
	slots := make([]*autosave.Debouncer, 0, len(s.slots))
	for _, d := range s.slots {
		slots = append(slots, d)
	}
	s.slots = map[int]*autosave.Debouncer{}
	s.mu.Unlock()
	for _, d := range slots {
		d.Flush()
		d.Stop()
	}
}

func (s *configSaver) slot(id int) *autosave.Debouncer {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.slots[id]
	if !ok {
		d = autosave.NewDebouncer(s.delay)
		s.slots[id] = d
	}
	return d
}
