// Package journal provides the editing operations for planner days. It
// wraps persistence so UIs and CLIs share one mutation path, and it is
// the layer that enforces editing rules the store does not, like photo
// size clamping and the no-empty-text rule.
package journal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/planner/pkg/datekey"
	"tableflip.dev/planner/pkg/plan"
	"tableflip.dev/planner/pkg/store"
)

var (
	ErrNoPersistence = errors.New("journal: no persistence configured")
	ErrNotFound      = errors.New("journal: placement not found")
	ErrEmptyText     = errors.New("journal: text must not be empty")
)

// Defaults applied to freshly placed items, matching where the page
// drops new content before the user moves it.
const (
	DefaultX         = 200.0
	DefaultY         = 300.0
	DefaultPhotoSize = 150.0
	DefaultFontSize  = 16.0
)

// Page is one day's full editing surface, loaded as a unit.
type Page struct {
	DateKey     string
	Photos      []plan.PhotoPlacement
	TextBoxes   []plan.TextBoxPlacement
	StickyNotes []plan.StickyNotePlacement
	Events      []plan.EventPlacement
}

// Clone returns an independent deep copy of the page.
func (pg Page) Clone() Page {
	out := Page{DateKey: pg.DateKey}
	out.Photos = make([]plan.PhotoPlacement, len(pg.Photos))
	for i, ph := range pg.Photos {
		img := make([]byte, len(ph.Image))
		copy(img, ph.Image)
		ph.Image = img
		out.Photos[i] = ph
	}
	out.TextBoxes = append([]plan.TextBoxPlacement(nil), pg.TextBoxes...)
	out.StickyNotes = append([]plan.StickyNotePlacement(nil), pg.StickyNotes...)
	out.Events = append([]plan.EventPlacement(nil), pg.Events...)
	return out
}

// Service provides high-level operations over per-day planner content.
type Service struct {
	Persistence store.Persistence
}

// Page loads every collection for the given day.
func (s *Service) Page(date time.Time) (Page, error) {
	if s.Persistence == nil {
		return Page{}, ErrNoPersistence
	}
	dk := datekey.Encode(date)
	return Page{
		DateKey:     dk,
		Photos:      s.Persistence.LoadPhotos(dk),
		TextBoxes:   s.Persistence.LoadTextBoxes(dk),
		StickyNotes: s.Persistence.LoadStickyNotes(dk),
		Events:      s.Persistence.LoadEvents(dk),
	}, nil
}

// Drawing loads the day's ink document.
func (s *Service) Drawing(date time.Time) (plan.StrokeDocument, error) {
	if s.Persistence == nil {
		return plan.StrokeDocument{}, ErrNoPersistence
	}
	return s.Persistence.LoadDrawing(datekey.Encode(date)), nil
}

// SaveDrawing replaces the day's ink document immediately. Callers that
// save on every stroke should go through DrawingSaver instead.
func (s *Service) SaveDrawing(date time.Time, doc plan.StrokeDocument) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	return s.Persistence.SaveDrawing(datekey.Encode(date), doc)
}

// AddPhoto places an image on the day at the default drop position.
func (s *Service) AddPhoto(date time.Time, image []byte) (plan.PhotoPlacement, error) {
	if s.Persistence == nil {
		return plan.PhotoPlacement{}, ErrNoPersistence
	}
	dk := datekey.Encode(date)
	photo := plan.PhotoPlacement{
		ID:    plan.NewID(),
		X:     DefaultX,
		Y:     DefaultY,
		W:     DefaultPhotoSize,
		H:     DefaultPhotoSize,
		Image: image,
	}
	photos := append(s.Persistence.LoadPhotos(dk), photo)
	if err := s.Persistence.SavePhotos(dk, photos); err != nil {
		return plan.PhotoPlacement{}, err
	}
	return photo, nil
}

// MovePhoto repositions a photo.
func (s *Service) MovePhoto(date time.Time, id string, x, y float64) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	dk := datekey.Encode(date)
	photos := s.Persistence.LoadPhotos(dk)
	for i := range photos {
		if photos[i].ID == id {
			photos[i].X = x
			photos[i].Y = y
			return s.Persistence.SavePhotos(dk, photos)
		}
	}
	return ErrNotFound
}

// ResizePhoto resizes a photo, clamping both dimensions to the minimum
// before anything is persisted.
func (s *Service) ResizePhoto(date time.Time, id string, w, h float64) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if w < plan.MinPhotoSize {
		w = plan.MinPhotoSize
	}
	if h < plan.MinPhotoSize {
		h = plan.MinPhotoSize
	}
	dk := datekey.Encode(date)
	photos := s.Persistence.LoadPhotos(dk)
	for i := range photos {
		if photos[i].ID == id {
			photos[i].W = w
			photos[i].H = h
			return s.Persistence.SavePhotos(dk, photos)
		}
	}
	return ErrNotFound
}

// DeletePhoto removes a photo and its stored image.
func (s *Service) DeletePhoto(date time.Time, id string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	dk := datekey.Encode(date)
	photos := s.Persistence.LoadPhotos(dk)
	for i := range photos {
		if photos[i].ID == id {
			photos = append(photos[:i], photos[i+1:]...)
			return s.Persistence.SavePhotos(dk, photos)
		}
	}
	return ErrNotFound
}

// AddTextBox places typed text on the day. Empty or whitespace-only
// text is never persisted.
func (s *Service) AddTextBox(date time.Time, text string, x, y float64) (plan.TextBoxPlacement, error) {
	if s.Persistence == nil {
		return plan.TextBoxPlacement{}, ErrNoPersistence
	}
	if strings.TrimSpace(text) == "" {
		return plan.TextBoxPlacement{}, ErrEmptyText
	}
	dk := datekey.Encode(date)
	box := plan.TextBoxPlacement{
		ID:       plan.NewID(),
		Text:     text,
		X:        x,
		Y:        y,
		FontSize: DefaultFontSize,
	}
	boxes := append(s.Persistence.LoadTextBoxes(dk), box)
	if err := s.Persistence.SaveTextBoxes(dk, boxes); err != nil {
		return plan.TextBoxPlacement{}, err
	}
	return box, nil
}

// EditTextBox replaces a text box's content. Editing the text away
// entirely removes the box, keeping the no-empty-text rule intact.
func (s *Service) EditTextBox(date time.Time, id string, text string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if strings.TrimSpace(text) == "" {
		return s.DeleteTextBox(date, id)
	}
	dk := datekey.Encode(date)
	boxes := s.Persistence.LoadTextBoxes(dk)
	for i := range boxes {
		if boxes[i].ID == id {
			boxes[i].Text = text
			return s.Persistence.SaveTextBoxes(dk, boxes)
		}
	}
	return ErrNotFound
}

// MoveTextBox repositions a text box.
func (s *Service) MoveTextBox(date time.Time, id string, x, y float64) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	dk := datekey.Encode(date)
	boxes := s.Persistence.LoadTextBoxes(dk)
	for i := range boxes {
		if boxes[i].ID == id {
			boxes[i].X = x
			boxes[i].Y = y
			return s.Persistence.SaveTextBoxes(dk, boxes)
		}
	}
	return ErrNotFound
}

// DeleteTextBox removes a text box.
func (s *Service) DeleteTextBox(date time.Time, id string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	dk := datekey.Encode(date)
	boxes := s.Persistence.LoadTextBoxes(dk)
	for i := range boxes {
		if boxes[i].ID == id {
			boxes = append(boxes[:i], boxes[i+1:]...)
			return s.Persistence.SaveTextBoxes(dk, boxes)
		}
	}
	return ErrNotFound
}

// AddStickyNote places a sticky note on the day.
func (s *Service) AddStickyNote(date time.Time, text string, x, y float64, color plan.StickyColor) (plan.StickyNotePlacement, error) {
	if s.Persistence == nil {
		return plan.StickyNotePlacement{}, ErrNoPersistence
	}
	if strings.TrimSpace(text) == "" {
		return plan.StickyNotePlacement{}, ErrEmptyText
	}
	dk := datekey.Encode(date)
	note := plan.StickyNotePlacement{
		ID:    plan.NewID(),
		Text:  text,
		X:     x,
		Y:     y,
		Color: plan.ParseStickyColor(color.String()),
	}
	notes := append(s.Persistence.LoadStickyNotes(dk), note)
	if err := s.Persistence.SaveStickyNotes(dk, notes); err != nil {
		return plan.StickyNotePlacement{}, err
	}
	return note, nil
}

// MoveStickyNote repositions a sticky note.
func (s *Service) MoveStickyNote(date time.Time, id string, x, y float64) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	dk := datekey.Encode(date)
	notes := s.Persistence.LoadStickyNotes(dk)
	for i := range notes {
		if notes[i].ID == id {
			notes[i].X = x
			notes[i].Y = y
			return s.Persistence.SaveStickyNotes(dk, notes)
		}
	}
	return ErrNotFound
}

// RecolorStickyNote changes a sticky note's color tag.
func (s *Service) RecolorStickyNote(date time.Time, id string, color plan.StickyColor) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	dk := datekey.Encode(date)
	notes := s.Persistence.LoadStickyNotes(dk)
	for i := range notes {
		if notes[i].ID == id {
			notes[i].Color = plan.ParseStickyColor(color.String())
			return s.Persistence.SaveStickyNotes(dk, notes)
		}
	}
	return ErrNotFound
}

// DeleteStickyNote removes a sticky note.
func (s *Service) DeleteStickyNote(date time.Time, id string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	dk := datekey.Encode(date)
	notes := s.Persistence.LoadStickyNotes(dk)
	for i := range notes {
		if notes[i].ID == id {
			notes = append(notes[:i], notes[i+1:]...)
			return s.Persistence.SaveStickyNotes(dk, notes)
		}
	}
	return ErrNotFound
}

// AddEvent pins an event or reminder widget to the day.
func (s *Service) AddEvent(date time.Time, title string, start, end time.Time, reminder bool) (plan.EventPlacement, error) {
	if s.Persistence == nil {
		return plan.EventPlacement{}, ErrNoPersistence
	}
	if strings.TrimSpace(title) == "" {
		return plan.EventPlacement{}, ErrEmptyText
	}
	dk := datekey.Encode(date)
	event := plan.EventPlacement{
		ID:       plan.NewID(),
		Title:    title,
		Start:    start,
		End:      end,
		X:        DefaultX,
		Y:        DefaultY,
		Reminder: reminder,
	}
	events := append(s.Persistence.LoadEvents(dk), event)
	if err := s.Persistence.SaveEvents(dk, events); err != nil {
		return plan.EventPlacement{}, err
	}
	return event, nil
}

// MoveEvent repositions an event widget.
func (s *Service) MoveEvent(date time.Time, id string, x, y float64) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	dk := datekey.Encode(date)
	events := s.Persistence.LoadEvents(dk)
	for i := range events {
		if events[i].ID == id {
			events[i].X = x
			events[i].Y = y
			return s.Persistence.SaveEvents(dk, events)
		}
	}
	return ErrNotFound
}

// ToggleEventCompleted flips a reminder widget's completion state.
func (s *Service) ToggleEventCompleted(date time.Time, id string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	dk := datekey.Encode(date)
	events := s.Persistence.LoadEvents(dk)
	for i := range events {
		if events[i].ID == id {
			events[i].Completed = !events[i].Completed
			return s.Persistence.SaveEvents(dk, events)
		}
	}
	return ErrNotFound
}

// DeleteEvent removes an event widget.
func (s *Service) DeleteEvent(date time.Time, id string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	dk := datekey.Encode(date)
	events := s.Persistence.LoadEvents(dk)
	for i := range events {
		if events[i].ID == id {
			events = append(events[:i], events[i+1:]...)
			return s.Persistence.SaveEvents(dk, events)
		}
	}
	return ErrNotFound
}

// ResolveID expands a short id prefix into the full id of an item on
// the day's page. Prefixes shorter than four characters are returned
// as-is, and an ambiguous prefix is an error.
func (s *Service) ResolveID(date time.Time, id string) (string, error) {
	pg, err := s.Page(date)
	if err != nil {
		return "", err
	}

	var ids []string
	for _, b := range pg.TextBoxes {
		ids = append(ids, b.ID)
	}
	for _, n := range pg.StickyNotes {
		ids = append(ids, n.ID)
	}
	for _, e := range pg.Events {
		ids = append(ids, e.ID)
	}
	for _, p := range pg.Photos {
		ids = append(ids, p.ID)
	}

	match := ""
	for _, full := range ids {
		if full == id {
			return full, nil
		}
		if len(id) >= 4 && strings.HasPrefix(full, id) {
			if match != "" {
				return "", fmt.Errorf("id %q is ambiguous", id)
			}
			match = full
		}
	}
	if match != "" {
		return match, nil
	}
	return id, nil
}
