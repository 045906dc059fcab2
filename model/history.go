package model

type rootSnapshot struct {
	blocks []Block
}

type historyState struct {
	undo []rootSnapshot
	redo []rootSnapshot
}

func (r *RootElement) snapshot() rootSnapshot {
	return rootSnapshot{blocks: r.Blocks()}
}

func (r *RootElement) restore(s rootSnapshot) {
	r.blocks = s.blocks
	if len(r.blocks) == 0 {
		r.blocks = []Block{{Type: Paragraph}}
	}
}

func (r *RootElement) recordUndo(prev rootSnapshot) {
	limit := r.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	r.hist.undo = append(r.hist.undo, prev)
	if len(r.hist.undo) > limit {
		r.hist.undo = r.hist.undo[len(r.hist.undo)-limit:]
	}
	r.hist.redo = nil
}

func (r *RootElement) CanUndo() bool { return len(r.hist.undo) > 0 }

func (r *RootElement) CanRedo() bool { return len(r.hist.redo) > 0 }

// Undo restores the content before the most recent edit. It reports
// whether anything was undone.
func (r *RootElement) Undo() bool {
	if len(r.hist.undo) == 0 {
		return false
	}

	cur := r.snapshot()
	i := len(r.hist.undo) - 1
	prev := r.hist.undo[i]
	r.hist.undo = r.hist.undo[:i]
	r.hist.redo = append(r.hist.redo, cur)

	r.restore(prev)
	r.doc.bump()
	return true
}

// Redo reapplies the most recently undone edit. It reports whether
// anything was redone.
func (r *RootElement) Redo() bool {
	if len(r.hist.redo) == 0 {
		return false
	}

	cur := r.snapshot()
	i := len(r.hist.redo) - 1
	next := r.hist.redo[i]
	r.hist.redo = r.hist.redo[:i]
	r.hist.undo = append(r.hist.undo, cur)

	r.restore(next)
	r.doc.bump()
	return true
}
