package video

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scary-story-pipeline/audio"
	"scary-story-pipeline/types"
)

// writeTestWAV writes seconds of silent mono PCM16 at the given rate.
func writeTestWAV(t *testing.T, path string, sampleRate int, seconds float64) {
	t.Helper()
	pcm := make([]byte, int(float64(sampleRate)*seconds)*2)
	require.NoError(t, audio.WriteWAV(path, pcm, 1, sampleRate, 2))
}

func TestProbeAudioDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "narration.wav")
	writeTestWAV(t, path, 24000, 3.5)

	dur, err := ProbeAudioDuration(path)

	require.NoError(t, err)
	assert.InDelta(t, 3.5, dur, 0.001)
}

func TestProbeAudioDurationMissingFile(t *testing.T) {
	dur, err := ProbeAudioDuration(filepath.Join(t.TempDir(), "nope.wav"))

	assert.Zero(t, dur)
	assert.True(t, errors.Is(err, types.ErrAudioRead))
}

func TestProbeAudioDurationNotAWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.wav")
	require.NoError(t, os.WriteFile(path, []byte("this is not audio"), 0644))

	dur, err := ProbeAudioDuration(path)

	assert.Zero(t, dur)
	assert.True(t, errors.Is(err, types.ErrAudioRead))
}
