package video

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scary-story-pipeline/types"
)

func TestJobRunMissingRecord(t *testing.T) {
	job := NewJob(NewAssembler(testVideoConfig(), &fakeEncoder{}))

	artifact, err := job.Run(context.Background(),
		filepath.Join(t.TempDir(), "nope.json"), "a.wav",
		[]types.Segment{{Index: 0, Text: "x"}}, "out.mp4")

	assert.Nil(t, artifact)
	assert.True(t, errors.Is(err, types.ErrRecordLoad))
}

func TestJobRunMalformedRecord(t *testing.T) {
	dir := t.TempDir()
	storyPath := filepath.Join(dir, "story.json")
	require.NoError(t, os.WriteFile(storyPath, []byte("{not json"), 0644))

	job := NewJob(NewAssembler(testVideoConfig(), &fakeEncoder{}))

	_, err := job.Run(context.Background(), storyPath, "a.wav",
		[]types.Segment{{Index: 0, Text: "x"}}, filepath.Join(dir, "out.mp4"))

	assert.True(t, errors.Is(err, types.ErrRecordLoad))
}

func TestJobRunDelegatesToAssembler(t *testing.T) {
	dir := t.TempDir()
	storyPath := filepath.Join(dir, "story.json")
	require.NoError(t, os.WriteFile(storyPath,
		[]byte(`{"id":"abc123","title":"The Attic","text":"..."}`), 0644))
	audioPath := filepath.Join(dir, "narration.wav")
	writeTestWAV(t, audioPath, 24000, 2.0)
	out := filepath.Join(dir, "videos", "story.mp4")

	enc := &fakeEncoder{}
	job := NewJob(NewAssembler(testVideoConfig(), enc))

	artifact, err := job.Run(context.Background(), storyPath, audioPath,
		[]types.Segment{{Index: 0, Text: "Something moved upstairs."}}, out)

	require.NoError(t, err)
	require.NotNil(t, artifact)
	assert.Equal(t, "The Attic", artifact.SourceTitle)
	assert.Equal(t, out, artifact.Path)
	assert.Equal(t, 1, enc.calls)
}

func TestJobRunSurfacesAssemblerErrors(t *testing.T) {
	dir := t.TempDir()
	storyPath := filepath.Join(dir, "story.json")
	require.NoError(t, os.WriteFile(storyPath, []byte(`{"id":"x","title":"T"}`), 0644))

	job := NewJob(NewAssembler(testVideoConfig(), &fakeEncoder{}))

	_, err := job.Run(context.Background(), storyPath, "a.wav", nil, filepath.Join(dir, "out.mp4"))

	assert.True(t, errors.Is(err, types.ErrNoContent))
}
