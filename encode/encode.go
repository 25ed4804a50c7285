package encode

import (
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/tayjaybabee/MIDIDiff/model"
)

const (
	rankNoteOff = 0
	rankNoteOn  = 1
)

type absEvent struct {
	tick     int64
	rank     int
	pitch    uint8
	velocity uint8
}

// ToSMF serializes notes into a single-track file at the given
// resolution. Multi-track structure of the sources is deliberately
// flattened away.
func ToSMF(notes []model.NoteEvent, ticksPerBeat uint16) *smf.SMF {
	events := make([]absEvent, 0, len(notes)*2)
	for _, n := range notes {
		events = append(events, absEvent{tick: n.Start, rank: rankNoteOn, pitch: n.Pitch, velocity: n.Velocity})
		events = append(events, absEvent{tick: n.End(), rank: rankNoteOff, pitch: n.Pitch})
	}

	// a note off sorts before a note on at the same tick, so a pitch
	// ending where another instance begins never reads as an overlap
	// and deltas stay non-negative
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].rank < events[j].rank
	})

	var track smf.Track
	var lastTick int64
	for _, evt := range events {
		delta := uint32(evt.tick - lastTick)
		if evt.rank == rankNoteOn {
			track.Add(delta, midi.NoteOn(0, evt.pitch, evt.velocity))
		} else {
			track.Add(delta, midi.NoteOff(0, evt.pitch))
		}
		lastTick = evt.tick
	}
	track.Close(0)

	res := smf.New()
	res.TimeFormat = smf.MetricTicks(ticksPerBeat)
	res.Add(track)
	return res
}
