package video

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"scary-story-pipeline/config"
	"scary-story-pipeline/types"
)

// Encoder muxes a frame manifest and a narration track into one video
// file. It is an interface so tests can substitute a fake instead of
// invoking a real external process.
type Encoder interface {
	Encode(ctx context.Context, manifestPath, audioPath, outputPath string) error
}

// FFmpegEncoder shells out to ffmpeg with the concat demuxer, re-encodes
// the slideshow to H.264/yuv420p and the audio to AAC, and truncates the
// output to the shorter stream.
type FFmpegEncoder struct {
	cfg config.VideoConfig
}

// NewFFmpegEncoder creates an FFmpegEncoder
func NewFFmpegEncoder(cfg config.VideoConfig) *FFmpegEncoder {
	return &FFmpegEncoder{cfg: cfg}
}

func (e *FFmpegEncoder) Encode(ctx context.Context, manifestPath, audioPath, outputPath string) error {
	cmd := exec.CommandContext(ctx, "ffmpeg", "-y",
		"-f", "concat",
		"-safe", "0",
		"-i", manifestPath,
		"-i", audioPath,
		"-c:v", "libx264",
		"-preset", e.cfg.Preset,
		"-crf", fmt.Sprintf("%d", e.cfg.CRF),
		"-c:a", "aac",
		"-b:a", e.cfg.AudioBitrate,
		"-shortest",
		"-pix_fmt", "yuv420p",
		outputPath,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: ffmpeg: %v: %s", types.ErrEncode, err, tailLines(stderr.String(), 10))
	}
	return nil
}

// tailLines keeps the end of ffmpeg's diagnostics, where the actual
// error lands, without dragging the whole banner into the error chain.
func tailLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
