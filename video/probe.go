package video

import (
	"fmt"
	"os"

	"github.com/gopxl/beep/v2/wav"

	"scary-story-pipeline/types"
)

// ProbeAudioDuration returns the duration of a WAV narration track in
// seconds, read from container metadata (frame count / sample rate)
// without decoding the audio. Failures wrap types.ErrAudioRead; the
// assembler substitutes a zero duration and keeps going.
func ProbeAudioDuration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: open %s: %v", types.ErrAudioRead, path, err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return 0, fmt.Errorf("%w: decode %s: %v", types.ErrAudioRead, path, err)
	}
	defer streamer.Close()

	if format.SampleRate <= 0 {
		return 0, fmt.Errorf("%w: %s: invalid sample rate %d", types.ErrAudioRead, path, format.SampleRate)
	}

	return float64(streamer.Len()) / float64(format.SampleRate), nil
}
