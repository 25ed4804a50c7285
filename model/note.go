package model

import "fmt"

// NoteKey identifies a note by placement only. Velocity is deliberately
// left out so two renderings of the same note compare equal.
type NoteKey struct {
	Pitch    uint8
	Start    int64
	Duration int64
}

type NoteEvent struct {
	Pitch    uint8
	Start    int64
	Duration int64
	Velocity uint8
}

// NewNoteEvent validates the MIDI ranges before constructing. Duration
// must be strictly positive; zero-length notes are never represented.
func NewNoteEvent(pitch int, start int64, duration int64, velocity int) (NoteEvent, error) {
	var blank NoteEvent
	if pitch < 0 || pitch > 127 {
		return blank, fmt.Errorf("pitch %v out of range 0-127", pitch)
	}
	if start < 0 {
		return blank, fmt.Errorf("start %v is negative", start)
	}
	if duration < 1 {
		return blank, fmt.Errorf("duration %v must be at least 1", duration)
	}
	if velocity < 0 || velocity > 127 {
		return blank, fmt.Errorf("velocity %v out of range 0-127", velocity)
	}
	return NoteEvent{
		Pitch:    uint8(pitch),
		Start:    start,
		Duration: duration,
		Velocity: uint8(velocity),
	}, nil
}

func (n NoteEvent) Key() NoteKey {
	return NoteKey{Pitch: n.Pitch, Start: n.Start, Duration: n.Duration}
}

func (n NoteEvent) End() int64 {
	return n.Start + n.Duration
}

func (n NoteEvent) String() string {
	return fmt.Sprintf("Note(p=%v, start=%v, dur=%v, vel=%v)", n.Pitch, n.Start, n.Duration, n.Velocity)
}
