package core

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tayjaybabee/MIDIDiff/encode"
	"github.com/tayjaybabee/MIDIDiff/extract"
	"github.com/tayjaybabee/MIDIDiff/midi"
	"github.com/tayjaybabee/MIDIDiff/model"
	"github.com/tayjaybabee/MIDIDiff/util"
)

func note(t *testing.T, pitch int, start, duration int64, velocity int) model.NoteEvent {
	t.Helper()
	n, err := model.NewNoteEvent(pitch, start, duration, velocity)
	if err != nil {
		t.Fatalf("could not build note: %v", err)
	}
	return n
}

func writeMidi(t *testing.T, path string, notes []model.NoteEvent) {
	t.Helper()
	if err := midi.WriteMidiFile(path, encode.ToSMF(notes, 480)); err != nil {
		t.Fatalf("could not write %v: %v", path, err)
	}
}

func TestRunWritesSymmetricDifference(t *testing.T) {
	dir := t.TempDir()
	fileA := filepath.Join(dir, "a.mid")
	fileB := filepath.Join(dir, "b.mid")
	outFile := filepath.Join(dir, "diff.mid")

	shared := note(t, 60, 0, 10, 100)
	onlyA := note(t, 64, 20, 10, 90)
	onlyB := note(t, 67, 40, 10, 80)
	writeMidi(t, fileA, []model.NoteEvent{shared, onlyA})
	writeMidi(t, fileB, []model.NoteEvent{shared, onlyB})

	assert := assert.New(t)
	assert.NoError(Run(fileA, fileB, outFile))

	res, err := midi.ReadMidiFile(outFile)
	assert.NoError(err)

	got := make(map[model.NoteKey]bool)
	for _, n := range extract.Extract(res) {
		got[n.Key()] = true
	}
	assert.Equal(got, map[model.NoteKey]bool{
		onlyA.Key(): true,
		onlyB.Key(): true,
	})
}

func TestRunWithIdenticalFilesWritesEmptyTrack(t *testing.T) {
	dir := t.TempDir()
	fileA := filepath.Join(dir, "a.mid")
	fileB := filepath.Join(dir, "b.mid")
	outFile := filepath.Join(dir, "diff.mid")

	notes := []model.NoteEvent{note(t, 60, 0, 10, 100)}
	writeMidi(t, fileA, notes)
	writeMidi(t, fileB, notes)

	assert := assert.New(t)
	assert.NoError(Run(fileA, fileB, outFile))

	res, err := midi.ReadMidiFile(outFile)
	assert.NoError(err)
	assert.Equal(len(extract.Extract(res)), 0)
}

func TestRunKeepsSourceResolution(t *testing.T) {
	dir := t.TempDir()
	fileA := filepath.Join(dir, "a.mid")
	fileB := filepath.Join(dir, "b.mid")
	outFile := filepath.Join(dir, "diff.mid")

	if err := midi.WriteMidiFile(fileA, encode.ToSMF([]model.NoteEvent{note(t, 60, 0, 10, 100)}, 960)); err != nil {
		t.Fatalf("could not write %v: %v", fileA, err)
	}
	writeMidi(t, fileB, nil)

	assert := assert.New(t)
	assert.NoError(Run(fileA, fileB, outFile))

	res, err := midi.ReadMidiFile(outFile)
	assert.NoError(err)
	assert.Equal(midi.TicksPerBeat(res), uint16(960))
}

func TestRunRefusesToClobberExistingOutput(t *testing.T) {
	dir := t.TempDir()
	fileA := filepath.Join(dir, "a.mid")
	fileB := filepath.Join(dir, "b.mid")
	outFile := filepath.Join(dir, "diff.mid")

	writeMidi(t, fileA, []model.NoteEvent{note(t, 60, 0, 10, 100)})
	writeMidi(t, fileB, nil)
	writeMidi(t, outFile, nil)

	assert := assert.New(t)
	assert.NoError(Run(fileA, fileB, outFile))

	probed := filepath.Join(dir, "diff_1.mid")
	res, err := midi.ReadMidiFile(probed)
	assert.NoError(err)
	assert.Equal(len(extract.Extract(res)), 1)
}

func TestRunFailsOnMissingInput(t *testing.T) {
	dir := t.TempDir()
	fileB := filepath.Join(dir, "b.mid")
	writeMidi(t, fileB, nil)

	assert := assert.New(t)
	assert.Error(Run(filepath.Join(dir, "missing.mid"), fileB, filepath.Join(dir, "diff.mid")))
	assert.Error(Run(fileB, filepath.Join(dir, "missing.mid"), filepath.Join(dir, "diff.mid")))
	assert.False(util.FileExists(filepath.Join(dir, "diff.mid")))
}
