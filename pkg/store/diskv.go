// Package store is the durable per-day home of planner content. Each
// day's collections are isolated behind its date key, so no write ever
// touches another day's records.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/planner/pkg/plan"
)

// Kind identifies one of the per-day record families.
type Kind string

const (
	KindDrawing     Kind = "drawing"
	KindPhotos      Kind = "photos"
	KindText        Kind = "text"
	KindStickyNotes Kind = "sticky_notes"
	KindEvents      Kind = "events"
)

// Kinds returns every record family.
func Kinds() []Kind {
	return []Kind{KindDrawing, KindPhotos, KindText, KindStickyNotes, KindEvents}
}

const photoMetadataFile = "metadata"

// Persistence is the storage contract for per-day planner content.
//
// Loads never fail from the caller's point of view: a missing or
// undecodable record reads as the empty default for that collection.
// Saves replace the whole record for that day and report write errors
// so the caller can surface them instead of losing content silently.
type Persistence interface {
	LoadDrawing(dateKey string) plan.StrokeDocument
	SaveDrawing(dateKey string, doc plan.StrokeDocument) error

	LoadPhotos(dateKey string) []plan.PhotoPlacement
	SavePhotos(dateKey string, photos []plan.PhotoPlacement) error

	LoadTextBoxes(dateKey string) []plan.TextBoxPlacement
	SaveTextBoxes(dateKey string, boxes []plan.TextBoxPlacement) error

	LoadStickyNotes(dateKey string) []plan.StickyNotePlacement
	SaveStickyNotes(dateKey string, notes []plan.StickyNotePlacement) error

	LoadEvents(dateKey string) []plan.EventPlacement
	SaveEvents(dateKey string, events []plan.EventPlacement) error

	Days(ctx context.Context) []string
	Contents(ctx context.Context) map[string][]Kind

	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
// A nil config falls back to LoadConfig.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		// Route writes through a sibling temp dir so every record lands
		// with a rename: readers observe the old payload or the new one,
		// never a partial write.
		TempDir:      basePath + ".tmp",
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) LoadDrawing(dateKey string) plan.StrokeDocument {
	data, err := p.d.Read(drawingKey(dateKey))
	if err != nil {
		// Missing and unreadable are the same thing here: no drawing yet.
		return plan.StrokeDocument{}
	}
	return plan.StrokeDocument{Data: data}
}

func (p *persistence) SaveDrawing(dateKey string, doc plan.StrokeDocument) error {
	if err := p.d.Write(drawingKey(dateKey), doc.Data); err != nil {
		return fmt.Errorf("store: write drawing for %s: %w", dateKey, err)
	}
	return nil
}

// photoMeta is the persisted geometry record; image bytes live in a
// separate per-id record beside it.
type photoMeta struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	W  float64 `json:"w"`
	H  float64 `json:"h"`
}

func (p *persistence) LoadPhotos(dateKey string) []plan.PhotoPlacement {
	metas := readList[photoMeta](p, photoMetadataKey(dateKey))
	photos := make([]plan.PhotoPlacement, 0, len(metas))
	for _, m := range metas {
		if m.ID == "" {
			continue
		}
		img, err := p.d.Read(photoImageKey(dateKey, m.ID))
		if err != nil {
			// A placement without its image is not renderable; drop it
			// the way a corrupt record would be dropped.
			continue
		}
		photos = append(photos, plan.PhotoPlacement{
			ID: m.ID, X: m.X, Y: m.Y, W: m.W, H: m.H, Image: img,
		})
	}
	return photos
}

func (p *persistence) SavePhotos(dateKey string, photos []plan.PhotoPlacement) error {
	metas := make([]photoMeta, 0, len(photos))
	keep := make(map[string]struct{}, len(photos))
	for i := range photos {
		if photos[i].ID == "" {
			photos[i].ID = plan.NewID()
		}
		keep[photos[i].ID] = struct{}{}
		metas = append(metas, photoMeta{
			ID: photos[i].ID,
			X:  photos[i].X, Y: photos[i].Y,
			W: photos[i].W, H: photos[i].H,
		})
	}

	for i := range photos {
		if len(photos[i].Image) == 0 {
			continue
		}
		key := photoImageKey(dateKey, photos[i].ID)
		if err := p.d.Write(key, photos[i].Image); err != nil {
			return fmt.Errorf("store: write photo %s for %s: %w", photos[i].ID, dateKey, err)
		}
	}

	if err := p.writeList(photoMetadataKey(dateKey), metas); err != nil {
		return err
	}

	// Clear image records whose placement was deleted.
	prefix := string(KindPhotos) + "_" + dateKey + "/"
	for key := range p.d.KeysPrefix(prefix, nil) {
		name := strings.TrimPrefix(key, prefix)
		if name == photoMetadataFile {
			continue
		}
		if _, ok := keep[name]; !ok {
			if err := p.d.Erase(key); err != nil {
				return fmt.Errorf("store: erase photo %s for %s: %w", name, dateKey, err)
			}
		}
	}
	return nil
}

func (p *persistence) LoadTextBoxes(dateKey string) []plan.TextBoxPlacement {
	boxes := readList[plan.TextBoxPlacement](p, textKey(dateKey))
	for i := range boxes {
		if boxes[i].ID == "" {
			boxes[i].ID = plan.NewID()
		}
	}
	return boxes
}

func (p *persistence) SaveTextBoxes(dateKey string, boxes []plan.TextBoxPlacement) error {
	if boxes == nil {
		boxes = []plan.TextBoxPlacement{}
	}
	for i := range boxes {
		if boxes[i].ID == "" {
			boxes[i].ID = plan.NewID()
		}
	}
	return p.writeList(textKey(dateKey), boxes)
}

func (p *persistence) LoadStickyNotes(dateKey string) []plan.StickyNotePlacement {
	notes := readList[plan.StickyNotePlacement](p, stickyNotesKey(dateKey))
	for i := range notes {
		if notes[i].ID == "" {
			notes[i].ID = plan.NewID()
		}
		notes[i].Color = plan.ParseStickyColor(notes[i].Color.String())
	}
	return notes
}

func (p *persistence) SaveStickyNotes(dateKey string, notes []plan.StickyNotePlacement) error {
	if notes == nil {
		notes = []plan.StickyNotePlacement{}
	}
	for i := range notes {
		if notes[i].ID == "" {
			notes[i].ID = plan.NewID()
		}
	}
	return p.writeList(stickyNotesKey(dateKey), notes)
}

func (p *persistence) LoadEvents(dateKey string) []plan.EventPlacement {
	events := readList[plan.EventPlacement](p, eventsKey(dateKey))
	for i := range events {
		if events[i].ID == "" {
			events[i].ID = plan.NewID()
		}
	}
	return events
}

func (p *persistence) SaveEvents(dateKey string, events []plan.EventPlacement) error {
	if events == nil {
		events = []plan.EventPlacement{}
	}
	for i := range events {
		if events[i].ID == "" {
			events[i].ID = plan.NewID()
		}
	}
	return p.writeList(eventsKey(dateKey), events)
}

// Days returns the sorted date keys that have at least one record.
func (p *persistence) Days(ctx context.Context) []string {
	contents := p.Contents(ctx)
	days := make([]string, 0, len(contents))
	for dk := range contents {
		days = append(days, dk)
	}
	sort.Strings(days)
	return days
}

// Contents maps each date key to the record kinds present for it.
func (p *persistence) Contents(ctx context.Context) map[string][]Kind {
	seen := make(map[string]map[Kind]struct{})
	for key := range p.d.Keys(ctx.Done()) {
		kind, dateKey, ok := splitKey(key)
		if !ok {
			fmt.Fprintf(os.Stderr, "store: unrecognized record %q\n", key)
			continue
		}
		if seen[dateKey] == nil {
			seen[dateKey] = make(map[Kind]struct{})
		}
		seen[dateKey][kind] = struct{}{}
	}

	out := make(map[string][]Kind, len(seen))
	for dateKey, kinds := range seen {
		list := make([]Kind, 0, len(kinds))
		for _, k := range Kinds() {
			if _, ok := kinds[k]; ok {
				list = append(list, k)
			}
		}
		out[dateKey] = list
	}
	return out
}

// readList decodes a JSON list record, degrading to an empty slice when
// the record is missing or undecodable.
func readList[T any](p *persistence, key string) []T {
	data, err := p.d.Read(key)
	if err != nil {
		return nil
	}
	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %s\n", key, err)
		return nil
	}
	return list
}

func (p *persistence) writeList(key string, list any) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

// Record keys. Single-record collections live directly under the base
// path; photo records share a per-day directory.

func drawingKey(dateKey string) string {
	return string(KindDrawing) + "_" + dateKey
}

func photoMetadataKey(dateKey string) string {
	return string(KindPhotos) + "_" + dateKey + "/" + photoMetadataFile
}

func photoImageKey(dateKey, id string) string {
	return string(KindPhotos) + "_" + dateKey + "/" + id
}

func textKey(dateKey string) string {
	return string(KindText) + "_" + dateKey
}

func stickyNotesKey(dateKey string) string {
	return string(KindStickyNotes) + "_" + dateKey
}

func eventsKey(dateKey string) string {
	return string(KindEvents) + "_" + dateKey
}

// splitKey recovers the kind and date key from a record key.
func splitKey(key string) (Kind, string, bool) {
	head := key
	if i := strings.IndexByte(head, '/'); i >= 0 {
		head = head[:i]
	}
	for _, k := range Kinds() {
		prefix := string(k) + "_"
		if strings.HasPrefix(head, prefix) {
			return k, head[len(prefix):], true
		}
	}
	return "", "", false
}

// The key's slash-separated segments become path components on disk, so
// a day's records land exactly where the key pattern reads:
// photos_2024-06-15/metadata, text_2024-06-15, and so on.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return strings.Join(pathKey.Path, "/") + "/" + pathKey.FileName
}
