// Package plan defines the content types that live on a single planner
// day: freehand ink, placed photos, text boxes, sticky notes, and event
// widgets.
package plan

// StrokeDocument holds the serialized freehand ink for one day. The
// byte format is owned by the drawing surface; nothing here inspects
// it. A day with no drawing yet is represented by an empty document.
type StrokeDocument struct {
	Data []byte
}

// Empty reports whether the document carries no ink.
func (d StrokeDocument) Empty() bool {
	return len(d.Data) == 0
}

// Clone returns an independent copy of the document.
func (d StrokeDocument) Clone() StrokeDocument {
	if d.Empty() {
		return StrokeDocument{}
	}
	data := make([]byte, len(d.Data))
	copy(data, d.Data)
	return StrokeDocument{Data: data}
}
