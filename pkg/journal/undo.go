package journal

// UndoLimit bounds how many page snapshots are retained per direction.
const UndoLimit = 50

// UndoStack is an in-memory undo/redo history of page snapshots for a
// single day. Nothing here touches persistence; callers capture a
// snapshot before a mutation and re-apply whatever Undo or Redo hands
// back.
type UndoStack struct {
	undo []Page
	redo []Page
}

// Push records the page state prior to a mutation and clears the redo
// history, matching the usual editor rule that a new edit forks away
// from anything previously undone.
func (u *UndoStack) Push(p Page) {
	u.undo = append(u.undo, p.Clone())
	if len(u.undo) > UndoLimit {
		u.undo = u.undo[len(u.undo)-UndoLimit:]
	}
	u.redo = nil
}

// Undo exchanges the current page for the most recent snapshot. The
// second return is false when there is nothing to undo.
func (u *UndoStack) Undo(current Page) (Page, bool) {
	if len(u.undo) == 0 {
		return current, false
	}
	top := u.undo[len(u.undo)-1]
	u.undo = u.undo[:len(u.undo)-1]
	u.redo = append(u.redo, current.Clone())
	if len(u.redo) > UndoLimit {
		u.redo = u.redo[len(u.redo)-UndoLimit:]
	}
	return top, true
}

// Redo exchanges the current page for the most recently undone state.
func (u *UndoStack) Redo(current Page) (Page, bool) {
	if len(u.redo) == 0 {
		return current, false
	}
	top := u.redo[len(u.redo)-1]
	u.redo = u.redo[:len(u.redo)-1]
	u.undo = append(u.undo, current.Clone())
	return top, true
}

// CanUndo reports whether an undo snapshot is available.
func (u *UndoStack) CanUndo() bool { return len(u.undo) > 0 }

// CanRedo reports whether a redo snapshot is available.
func (u *UndoStack) CanRedo() bool { return len(u.redo) > 0 }
