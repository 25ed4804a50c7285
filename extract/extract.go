package extract

import (
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/tayjaybabee/MIDIDiff/model"
)

type openNote struct {
	start    int64
	velocity uint8
}

// Extract flattens a parsed midi file into note events, pairing each
// note on with its closing note off. Malformed pairings (orphan offs,
// zero-length notes, notes still sounding at end of track) are dropped
// rather than reported, to tolerate non-conformant files in the wild.
func Extract(s *smf.SMF) []model.NoteEvent {
	var notes []model.NoteEvent

	for _, track := range s.Tracks {
		notes = append(notes, extractTrack(track)...)
	}

	// stable so equal starts keep track order, keeping output deterministic
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Start < notes[j].Start
	})
	return notes
}

func extractTrack(track smf.Track) []model.NoteEvent {
	var res []model.NoteEvent
	var absTicks int64

	// per pitch, the notes currently sounding. A stack rather than a
	// single slot: a retriggered pitch must close most-recent-first.
	open := make(map[uint8][]openNote)

	for _, event := range track {
		// deltas advance the clock for every message, ignored ones included
		absTicks += int64(event.Delta)
		var channel uint8
		var key uint8
		var velocity uint8
		switch {
		case event.Message.GetNoteOn(&channel, &key, &velocity):
			if velocity > 0 {
				open[key] = append(open[key], openNote{start: absTicks, velocity: velocity})
			} else {
				// note on with velocity 0 is a note off by convention
				res = closeNote(res, open, key, absTicks)
			}
		case event.Message.GetNoteOff(&channel, &key, &velocity):
			res = closeNote(res, open, key, absTicks)
		}
	}

	return res
}

func closeNote(res []model.NoteEvent, open map[uint8][]openNote, key uint8, absTicks int64) []model.NoteEvent {
	stack := open[key]
	if len(stack) == 0 {
		// note off without a matching note on
		return res
	}
	on := stack[len(stack)-1]
	open[key] = stack[:len(stack)-1]

	n, err := model.NewNoteEvent(int(key), on.start, absTicks-on.start, int(on.velocity))
	if err != nil {
		// non-positive duration, drop the pairing
		return res
	}
	return append(res, n)
}
