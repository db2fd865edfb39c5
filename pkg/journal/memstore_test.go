package journal

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"tableflip.dev/planner/pkg/plan"
	"tableflip.dev/planner/pkg/store"
)

// memStore is an in-memory store.Persistence for service tests.
type memStore struct {
	mu       sync.Mutex
	drawings map[string][]byte
	photos   map[string][]plan.PhotoPlacement
	text     map[string][]plan.TextBoxPlacement
	sticky   map[string][]plan.StickyNotePlacement
	events   map[string][]plan.EventPlacement

	failWrites bool
}

func newMemStore() *memStore {
	return &memStore{
		drawings: make(map[string][]byte),
		photos:   make(map[string][]plan.PhotoPlacement),
		text:     make(map[string][]plan.TextBoxPlacement),
		sticky:   make(map[string][]plan.StickyNotePlacement),
		events:   make(map[string][]plan.EventPlacement),
	}
}

func (m *memStore) writeErr() error {
	if m.failWrites {
		return fmt.Errorf("memstore: disk full")
	}
	return nil
}

func (m *memStore) LoadDrawing(dk string) plan.StrokeDocument {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.drawings[dk]
	if !ok {
		return plan.StrokeDocument{}
	}
	return plan.StrokeDocument{Data: append([]byte(nil), data...)}
}

func (m *memStore) SaveDrawing(dk string, doc plan.StrokeDocument) error {
	if err := m.writeErr(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drawings[dk] = append([]byte(nil), doc.Data...)
	return nil
}

func (m *memStore) LoadPhotos(dk string) []plan.PhotoPlacement {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]plan.PhotoPlacement(nil), m.photos[dk]...)
}

func (m *memStore) SavePhotos(dk string, photos []plan.PhotoPlacement) error {
	if err := m.writeErr(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.photos[dk] = append([]plan.PhotoPlacement(nil), photos...)
	return nil
}

func (m *memStore) LoadTextBoxes(dk string) []plan.TextBoxPlacement {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]plan.TextBoxPlacement(nil), m.text[dk]...)
}

func (m *memStore) SaveTextBoxes(dk string, boxes []plan.TextBoxPlacement) error {
	if err := m.writeErr(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text[dk] = append([]plan.TextBoxPlacement(nil), boxes...)
	return nil
}

func (m *memStore) LoadStickyNotes(dk string) []plan.StickyNotePlacement {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]plan.StickyNotePlacement(nil), m.sticky[dk]...)
}

func (m *memStore) SaveStickyNotes(dk string, notes []plan.StickyNotePlacement) error {
	if err := m.writeErr(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sticky[dk] = append([]plan.StickyNotePlacement(nil), notes...)
	return nil
}

func (m *memStore) LoadEvents(dk string) []plan.EventPlacement {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]plan.EventPlacement(nil), m.events[dk]...)
}

func (m *memStore) SaveEvents(dk string, events []plan.EventPlacement) error {
	if err := m.writeErr(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events[dk] = append([]plan.EventPlacement(nil), events...)
	return nil
}

func (m *memStore) Days(_ context.Context) []string {
	days := make(map[string]struct{})
	m.mu.Lock()
	for dk := range m.drawings {
		days[dk] = struct{}{}
	}
	for dk := range m.photos {
		days[dk] = struct{}{}
	}
	for dk := range m.text {
		days[dk] = struct{}{}
	}
	for dk := range m.sticky {
		days[dk] = struct{}{}
	}
	for dk := range m.events {
		days[dk] = struct{}{}
	}
	m.mu.Unlock()

	out := make([]string, 0, len(days))
	for dk := range days {
		out = append(out, dk)
	}
	sort.Strings(out)
	return out
}

func (m *memStore) Contents(_ context.Context) map[string][]store.Kind {
	out := make(map[string][]store.Kind)
	m.mu.Lock()
	defer m.mu.Unlock()
	for dk := range m.drawings {
		out[dk] = append(out[dk], store.KindDrawing)
	}
	for dk := range m.photos {
		out[dk] = append(out[dk], store.KindPhotos)
	}
	for dk := range m.text {
		out[dk] = append(out[dk], store.KindText)
	}
	for dk := range m.sticky {
		out[dk] = append(out[dk], store.KindStickyNotes)
	}
	for dk := range m.events {
		out[dk] = append(out[dk], store.KindEvents)
	}
	return out
}

func (m *memStore) Watch(_ context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}
