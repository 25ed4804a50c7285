package noteset

import "github.com/tayjaybabee/MIDIDiff/model"

// DiffResult carries the combined symmetric difference plus the
// per-side distinct counts for reporting.
type DiffResult struct {
	Notes   []model.NoteEvent
	OnlyInA int
	OnlyInB int
}

// Diff treats both inputs as sets keyed on (pitch, start, duration):
// duplicate keys within one input collapse to a single member, and
// velocity never affects membership. The combined output lists A-only
// notes in first-seen input order, then B-only notes.
func Diff(notesA, notesB []model.NoteEvent) DiffResult {
	keysA := keySet(notesA)
	keysB := keySet(notesB)

	var res DiffResult
	res.Notes = appendMissing(res.Notes, notesA, keysB)
	res.OnlyInA = len(res.Notes)
	res.Notes = appendMissing(res.Notes, notesB, keysA)
	res.OnlyInB = len(res.Notes) - res.OnlyInA
	return res
}

func keySet(notes []model.NoteEvent) map[model.NoteKey]bool {
	m := make(map[model.NoteKey]bool, len(notes))
	for _, n := range notes {
		m[n.Key()] = true
	}
	return m
}

func appendMissing(dst []model.NoteEvent, notes []model.NoteEvent, other map[model.NoteKey]bool) []model.NoteEvent {
	seen := make(map[model.NoteKey]bool, len(notes))
	for _, n := range notes {
		k := n.Key()
		if other[k] || seen[k] {
			continue
		}
		seen[k] = true
		dst = append(dst, n)
	}
	return dst
}
