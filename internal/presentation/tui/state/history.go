package state

import "github.com/ytgrid/ytgrid/internal/logger"

// BeginningOfHistory is the status shown when there is nothing to go back to.
const BeginningOfHistory = "Already at the beginning of history"

// HistoryStack is the unbounded back stack of page snapshots.
type HistoryStack struct {
	entries []Snapshot
}

// NewHistoryStack returns an empty stack.
func NewHistoryStack() *HistoryStack {
	return &HistoryStack{}
}

// Push stores snap on top.
func (h *HistoryStack) Push(snap Snapshot) {
	h.entries = append(h.entries, snap)
	logger.Debug("history push %s (%s), depth %d", snap.ID, snap.Page, len(h.entries))
}

// Pop removes and returns the top snapshot.
func (h *HistoryStack) Pop() (Snapshot, bool) {
	if len(h.entries) == 0 {
		return Snapshot{}, false
	}
	top := h.entries[len(h.entries)-1]
	h.entries[len(h.entries)-1] = Snapshot{}
	h.entries = h.entries[:len(h.entries)-1]
	logger.Debug("history pop %s (%s), depth %d", top.ID, top.Page, len(h.entries))
	return top, true
}

// Clear forgets every snapshot.
func (h *HistoryStack) Clear() {
	h.entries = nil
}

// Len returns the stack depth.
func (h *HistoryStack) Len() int {
	return len(h.entries)
}
