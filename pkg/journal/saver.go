package journal

import (
	"sync"
	"time"

	"tableflip.dev/planner/pkg/datekey"
	"tableflip.dev/planner/pkg/plan"
	"tableflip.dev/planner/pkg/store"
)

// SaveDelay is how long the saver waits after the last stroke before
// writing the drawing. The drawing surface notifies on every stroke;
// coalescing keeps write amplification down without risking more than
// half a second of ink.
const SaveDelay = 500 * time.Millisecond

// DrawingSaver debounces drawing saves per day. A newer Update for the
// same day supersedes a pending one rather than queueing behind it, so
// at most one save per day is ever outstanding. Flush must be called
// before the active day changes so switching days never drops strokes.
type DrawingSaver struct {
	Persistence store.Persistence

	// OnError receives write failures from deferred saves, which have
	// no caller left to return an error to. Optional.
	OnError func(dateKey string, err error)

	delay time.Duration

	mu      sync.Mutex
	pending map[string]*pendingSave
}

type pendingSave struct {
	timer *time.Timer
	doc   plan.StrokeDocument
}

// NewDrawingSaver returns a saver writing through p with the standard
// delay.
func NewDrawingSaver(p store.Persistence) *DrawingSaver {
	return &DrawingSaver{
		Persistence: p,
		delay:       SaveDelay,
		pending:     make(map[string]*pendingSave),
	}
}

// Update records the latest version of the day's drawing and schedules
// a deferred save, replacing any save already pending for that day.
func (s *DrawingSaver) Update(date time.Time, doc plan.StrokeDocument) {
	dk := datekey.Encode(date)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		s.pending = make(map[string]*pendingSave)
	}
	if s.delay == 0 {
		s.delay = SaveDelay
	}

	if ps, ok := s.pending[dk]; ok {
		ps.timer.Stop()
		ps.doc = doc
		ps.timer.Reset(s.delay)
		return
	}

	ps := &pendingSave{doc: doc}
	ps.timer = time.AfterFunc(s.delay, func() {
		s.fire(dk)
	})
	s.pending[dk] = ps
}

func (s *DrawingSaver) fire(dk string) {
	s.mu.Lock()
	ps, ok := s.pending[dk]
	if ok {
		delete(s.pending, dk)
	}
	s.mu.Unlock()
	if !ok {
		// A Flush got there first.
		return
	}
	s.save(dk, ps.doc)
}

// Flush writes the day's pending drawing immediately, if any. Call it
// whenever the active date is about to change.
func (s *DrawingSaver) Flush(date time.Time) error {
	dk := datekey.Encode(date)

	s.mu.Lock()
	ps, ok := s.pending[dk]
	if ok {
		ps.timer.Stop()
		delete(s.pending, dk)
	}
	s.mu.Unlock()

	if !ok {
		return nil
	}
	return s.saveErr(dk, ps.doc)
}

// Close flushes every pending save. The saver remains usable.
func (s *DrawingSaver) Close() error {
	s.mu.Lock()
	drained := s.pending
	s.pending = make(map[string]*pendingSave)
	s.mu.Unlock()

	var first error
	for dk, ps := range drained {
		ps.timer.Stop()
		if err := s.saveErr(dk, ps.doc); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (s *DrawingSaver) save(dk string, doc plan.StrokeDocument) {
	if err := s.saveErr(dk, doc); err != nil && s.OnError != nil {
		s.OnError(dk, err)
	}
}

func (s *DrawingSaver) saveErr(dk string, doc plan.StrokeDocument) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	return s.Persistence.SaveDrawing(dk, doc)
}
