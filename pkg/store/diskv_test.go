package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/planner/pkg/plan"
)

func newTestStore(t *testing.T) (Persistence, string) {
	t.Helper()
	dir := t.TempDir()
	p, err := Load(ConfigAt(dir))
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return p, dir
}

func TestDrawingRoundTrip(t *testing.T) {
	p, _ := newTestStore(t)

	doc := plan.StrokeDocument{Data: []byte{0x01, 0x02, 0x03, 0xff}}
	if err := p.SaveDrawing("2024-06-15", doc); err != nil {
		t.Fatalf("save drawing: %v", err)
	}

	got := p.LoadDrawing("2024-06-15")
	if string(got.Data) != string(doc.Data) {
		t.Fatalf("drawing changed across save/load: %v vs %v", got.Data, doc.Data)
	}
}

func TestDrawingMissingIsEmpty(t *testing.T) {
	p, dir := newTestStore(t)

	got := p.LoadDrawing("2024-06-15")
	if !got.Empty() {
		t.Fatalf("expected empty drawing, got %d bytes", len(got.Data))
	}

	// Loading must not create a record as a side effect.
	if _, err := os.Stat(filepath.Join(dir, "drawing_2024-06-15")); !os.IsNotExist(err) {
		t.Fatalf("load created a record: %v", err)
	}
}

func TestDrawingOverwrite(t *testing.T) {
	p, _ := newTestStore(t)

	if err := p.SaveDrawing("2024-06-15", plan.StrokeDocument{Data: []byte("first")}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := p.SaveDrawing("2024-06-15", plan.StrokeDocument{Data: []byte("second")}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := p.LoadDrawing("2024-06-15"); string(got.Data) != "second" {
		t.Fatalf("expected wholesale replace, got %q", got.Data)
	}
}

func TestTextBoxRoundTrip(t *testing.T) {
	p, _ := newTestStore(t)

	boxes := []plan.TextBoxPlacement{{Text: "Hello", X: 100, Y: 200, FontSize: 16}}
	if err := p.SaveTextBoxes("2024-06-15", boxes); err != nil {
		t.Fatalf("save text boxes: %v", err)
	}

	got := p.LoadTextBoxes("2024-06-15")
	if len(got) != 1 {
		t.Fatalf("expected 1 text box, got %d", len(got))
	}
	b := got[0]
	if b.Text != "Hello" || b.X != 100 || b.Y != 200 || b.FontSize != 16 {
		t.Fatalf("text box fields changed: %+v", b)
	}
	if b.ID == "" {
		t.Fatalf("loaded text box missing identifier")
	}
}

func TestTextBoxCorruptIsEmpty(t *testing.T) {
	p, dir := newTestStore(t)

	if err := os.WriteFile(filepath.Join(dir, "text_2024-06-15"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt record: %v", err)
	}
	if got := p.LoadTextBoxes("2024-06-15"); len(got) != 0 {
		t.Fatalf("corrupt record should read as empty, got %d boxes", len(got))
	}
}

func TestStickyNotesDeleteLeavesEmptyRecord(t *testing.T) {
	p, dir := newTestStore(t)

	notes := []plan.StickyNotePlacement{{Text: "remember", X: 10, Y: 20, Color: plan.StickyPink}}
	if err := p.SaveStickyNotes("2024-06-15", notes); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := p.SaveStickyNotes("2024-06-15", nil); err != nil {
		t.Fatalf("save empty: %v", err)
	}

	if got := p.LoadStickyNotes("2024-06-15"); len(got) != 0 {
		t.Fatalf("expected empty collection, got %d", len(got))
	}
	data, err := os.ReadFile(filepath.Join(dir, "sticky_notes_2024-06-15"))
	if err != nil {
		t.Fatalf("the record should still exist after deleting all notes: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("record should hold an empty list, got %q", data)
	}
}

func TestStickyNoteColorNormalizedOnLoad(t *testing.T) {
	p, dir := newTestStore(t)

	raw := []byte(`[{"text":"a","x":1,"y":2,"color":"ultraviolet"},{"text":"b","x":3,"y":4}]`)
	if err := os.WriteFile(filepath.Join(dir, "sticky_notes_2024-06-15"), raw, 0o644); err != nil {
		t.Fatalf("seed record: %v", err)
	}

	got := p.LoadStickyNotes("2024-06-15")
	if len(got) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(got))
	}
	for _, n := range got {
		if n.Color != plan.StickyYellow {
			t.Fatalf("unknown/absent color should load as default, got %q", n.Color)
		}
	}
}

func TestPhotosRoundTrip(t *testing.T) {
	p, _ := newTestStore(t)

	photos := []plan.PhotoPlacement{
		{X: 200, Y: 300, W: 150, H: 150, Image: []byte("jpeg-one")},
		{X: 40, Y: 60, W: 80, H: 120, Image: []byte("jpeg-two")},
	}
	if err := p.SavePhotos("2024-06-15", photos); err != nil {
		t.Fatalf("save photos: %v", err)
	}
	if photos[0].ID == "" || photos[1].ID == "" {
		t.Fatalf("save should assign identifiers")
	}

	got := p.LoadPhotos("2024-06-15")
	if len(got) != 2 {
		t.Fatalf("expected 2 photos, got %d", len(got))
	}
	byID := map[string]plan.PhotoPlacement{}
	for _, ph := range got {
		byID[ph.ID] = ph
	}
	first, ok := byID[photos[0].ID]
	if !ok {
		t.Fatalf("photo %s lost across save/load", photos[0].ID)
	}
	if first.X != 200 || first.Y != 300 || first.W != 150 || first.H != 150 {
		t.Fatalf("photo geometry changed: %+v", first)
	}
	if string(first.Image) != "jpeg-one" {
		t.Fatalf("photo payload changed: %q", first.Image)
	}
}

func TestPhotosDeleteErasesImage(t *testing.T) {
	p, dir := newTestStore(t)

	photos := []plan.PhotoPlacement{
		{X: 1, Y: 2, W: 50, H: 50, Image: []byte("keep")},
		{X: 3, Y: 4, W: 50, H: 50, Image: []byte("drop")},
	}
	if err := p.SavePhotos("2024-06-15", photos); err != nil {
		t.Fatalf("save: %v", err)
	}
	dropped := photos[1].ID

	if err := p.SavePhotos("2024-06-15", photos[:1]); err != nil {
		t.Fatalf("save after delete: %v", err)
	}

	if got := p.LoadPhotos("2024-06-15"); len(got) != 1 {
		t.Fatalf("expected 1 photo after delete, got %d", len(got))
	}
	if _, err := os.Stat(filepath.Join(dir, "photos_2024-06-15", dropped)); !os.IsNotExist(err) {
		t.Fatalf("deleted photo image still on disk: %v", err)
	}
}

func TestPhotosOrderPreserved(t *testing.T) {
	p, _ := newTestStore(t)

	photos := []plan.PhotoPlacement{
		{X: 1, Image: []byte("a"), W: 50, H: 50},
		{X: 2, Image: []byte("b"), W: 50, H: 50},
		{X: 3, Image: []byte("c"), W: 50, H: 50},
	}
	if err := p.SavePhotos("2024-06-15", photos); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := p.LoadPhotos("2024-06-15")
	if len(got) != 3 {
		t.Fatalf("expected 3 photos, got %d", len(got))
	}
	for i := range got {
		if got[i].X != photos[i].X {
			t.Fatalf("insertion order lost: position %d has X=%v", i, got[i].X)
		}
	}
}

func TestEventsRoundTrip(t *testing.T) {
	p, _ := newTestStore(t)

	start := time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC)
	events := []plan.EventPlacement{{
		Title: "standup", Start: start, End: start.Add(30 * time.Minute),
		X: 200, Y: 300, Reminder: true,
	}}
	if err := p.SaveEvents("2024-06-15", events); err != nil {
		t.Fatalf("save events: %v", err)
	}

	got := p.LoadEvents("2024-06-15")
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	e := got[0]
	if e.Title != "standup" || !e.Start.Equal(start) || !e.Reminder || e.Completed {
		t.Fatalf("event fields changed: %+v", e)
	}
}

func TestDaysAndContents(t *testing.T) {
	p, _ := newTestStore(t)
	ctx := context.Background()

	if err := p.SaveDrawing("2024-06-15", plan.StrokeDocument{Data: []byte("ink")}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := p.SaveTextBoxes("2024-06-15", []plan.TextBoxPlacement{{Text: "x"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := p.SaveStickyNotes("2024-06-16", []plan.StickyNotePlacement{{Text: "y"}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	days := p.Days(ctx)
	if len(days) != 2 || days[0] != "2024-06-15" || days[1] != "2024-06-16" {
		t.Fatalf("unexpected days: %v", days)
	}

	contents := p.Contents(ctx)
	kinds := contents["2024-06-15"]
	if len(kinds) != 2 || kinds[0] != KindDrawing || kinds[1] != KindText {
		t.Fatalf("unexpected kinds for 2024-06-15: %v", kinds)
	}
	if len(contents["2024-06-16"]) != 1 || contents["2024-06-16"][0] != KindStickyNotes {
		t.Fatalf("unexpected kinds for 2024-06-16: %v", contents["2024-06-16"])
	}
}

func TestCrossDateIsolation(t *testing.T) {
	p, _ := newTestStore(t)

	if err := p.SaveTextBoxes("2024-06-15", []plan.TextBoxPlacement{{Text: "fifteen"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := p.SaveTextBoxes("2024-06-16", nil); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := p.LoadTextBoxes("2024-06-15")
	if len(got) != 1 || got[0].Text != "fifteen" {
		t.Fatalf("write to another date disturbed this one: %+v", got)
	}
}
