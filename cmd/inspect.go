package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tayjaybabee/MIDIDiff/extract"
	"github.com/tayjaybabee/MIDIDiff/midi"
	"github.com/tayjaybabee/MIDIDiff/util"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Inspects the note events of a MIDI file",
	Long:  `Inspects the note events of a MIDI file`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	notes := extract.Extract(parsed)

	fmt.Printf("ticksPerBeat: %v\n", midi.TicksPerBeat(parsed))
	fmt.Printf("numTracks: %v\n", len(parsed.Tracks))
	fmt.Printf("numNotes: %v\n", len(notes))
	if len(notes) == 0 {
		return nil
	}

	byPitch := make(map[uint8]int)
	durations := make([]int64, 0, len(notes))
	lo := notes[0].Pitch
	hi := notes[0].Pitch
	var lastEnd int64
	for _, n := range notes {
		byPitch[n.Pitch] += 1
		durations = append(durations, n.Duration)
		lo = util.Min(lo, n.Pitch)
		hi = util.Max(hi, n.Pitch)
		lastEnd = util.Max(lastEnd, n.End())
	}

	fmt.Printf("distinctPitches: %v\n", len(byPitch))
	fmt.Printf("pitchRange: %v-%v\n", lo, hi)
	fmt.Printf("totalNoteTicks: %v\n", util.Sum(durations))
	fmt.Printf("lastNoteEndsAt: %v\n", lastEnd)

	keys := util.GetKeys(byPitch)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	for _, key := range keys {
		fmt.Printf("pitch %v: %v notes\n", key, byPitch[key])
	}
	return nil
}
