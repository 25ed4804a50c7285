package core

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/tayjaybabee/MIDIDiff/encode"
	"github.com/tayjaybabee/MIDIDiff/extract"
	"github.com/tayjaybabee/MIDIDiff/midi"
	"github.com/tayjaybabee/MIDIDiff/noteset"
	"github.com/tayjaybabee/MIDIDiff/util"
)

// Run executes the whole pipeline: load both files, extract their
// notes, diff, and save the symmetric difference as a new midi file.
func Run(fileA, fileB, outFile string) error {
	for _, path := range []string{fileA, fileB} {
		if !util.FileExists(path) {
			return errors.Errorf("Cannot find midi file: %v", path)
		}
	}

	midA, err := midi.ReadMidiFile(fileA)
	if err != nil {
		return errors.Wrapf(err, "could not load %v", fileA)
	}
	midB, err := midi.ReadMidiFile(fileB)
	if err != nil {
		return errors.Wrapf(err, "could not load %v", fileB)
	}

	notesA := extract.Extract(midA)
	notesB := extract.Extract(midB)

	res := noteset.Diff(notesA, notesB)
	fmt.Printf("Notes only in A: %v\n", res.OnlyInA)
	fmt.Printf("Notes only in B: %v\n", res.OnlyInB)

	// the output inherits file A's resolution
	diffMid := encode.ToSMF(res.Notes, midi.TicksPerBeat(midA))

	outPath := util.ResolveOutputPath(outFile)
	if err := midi.WriteMidiFile(outPath, diffMid); err != nil {
		return errors.Wrap(err, "could not save diff")
	}

	fmt.Printf("Saved diff MIDI -> %v\n", outPath)
	return nil
}
