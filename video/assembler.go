package video

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"scary-story-pipeline/config"
	"scary-story-pipeline/types"
)

// Assembler turns an ordered segment list plus a narration track into
// one video file: probe the audio, allocate per-segment display time,
// composite one frame per segment, and hand the manifest to the encoder.
type Assembler struct {
	cfg        config.VideoConfig
	compositor *Compositor
	allocator  TimelineAllocator
	encoder    Encoder
}

// NewAssembler creates an Assembler. A nil encoder gets the real
// ffmpeg-backed one.
func NewAssembler(cfg config.VideoConfig, enc Encoder) *Assembler {
	if enc == nil {
		enc = NewFFmpegEncoder(cfg)
	}
	return &Assembler{
		cfg:        cfg,
		compositor: NewCompositor(cfg),
		allocator:  NewTimelineAllocator(cfg.MinSegmentSeconds),
		encoder:    enc,
	}
}

// Assemble produces the video at outputPath from segments and the
// narration at audioPath. The frame working directory lives only for
// the duration of this call and is removed on every exit path.
//
// Missing or undecodable segment images degrade to rendered text
// frames; an unreadable narration track degrades to a zero duration
// (the video is then paced by the per-segment floor and will outrun
// the audio). Empty input and encoder failure are fatal.
func (a *Assembler) Assemble(ctx context.Context, segments []types.Segment, audioPath, outputPath, title string) (*types.VideoArtifact, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: %q", types.ErrNoContent, title)
	}

	log.Printf("[video] Creating video: %s", outputPath)

	duration, err := ProbeAudioDuration(audioPath)
	if err != nil {
		log.Printf("[video] Warning: %v — video length will be driven by frame count", err)
		duration = 0
	}
	log.Printf("[video] Audio duration: %.2f seconds", duration)

	durations := a.allocator.Allocate(len(segments), duration)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	tempDir, err := os.MkdirTemp(filepath.Dir(outputPath), "temp_video_frames_")
	if err != nil {
		return nil, fmt.Errorf("create frame dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	framePaths := make([]string, len(segments))
	for i, seg := range segments {
		frame := a.frameForSegment(seg, i)

		framePath := filepath.Join(tempDir, fmt.Sprintf("frame_%04d.png", i))
		if err := writePNG(framePath, frame); err != nil {
			return nil, fmt.Errorf("write frame %d: %w", i, err)
		}
		framePaths[i] = framePath
	}

	manifestPath := filepath.Join(tempDir, "input_list.txt")
	if err := writeManifest(manifestPath, framePaths, durations); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}

	log.Printf("[video] Encoding %d frames + audio...", len(framePaths))
	if err := a.encoder.Encode(ctx, manifestPath, audioPath, outputPath); err != nil {
		return nil, err
	}

	log.Printf("[video] ✅ Video created: %s", outputPath)
	return &types.VideoArtifact{
		Path:            outputPath,
		SourceAudioPath: audioPath,
		SourceTitle:     title,
	}, nil
}

// frameForSegment prefers the segment's generated image and falls back
// to a text frame on a missing path or decode failure. A broken image
// never aborts the job.
func (a *Assembler) frameForSegment(seg types.Segment, i int) *image.RGBA {
	if seg.ImagePath != "" {
		frame, err := a.compositor.NormalizeImage(seg.ImagePath)
		if err == nil {
			return frame
		}
		log.Printf("[video] Warning: segment %d: %v — using text frame", i, err)
	}

	text := seg.Text
	if strings.TrimSpace(text) == "" {
		text = fmt.Sprintf("Part %d", i+1)
	}
	return a.compositor.RenderTextFrame(text)
}

// writeManifest emits a concat-demuxer list: file/duration pairs in
// playback order, then the last frame's path once more without a
// duration, which is how the demuxer learns the final frame's hold.
func writeManifest(path string, framePaths []string, durations []float64) error {
	var b strings.Builder
	for i, fp := range framePaths {
		fmt.Fprintf(&b, "file '%s'\n", fp)
		fmt.Fprintf(&b, "duration %.3f\n", durations[i])
	}
	fmt.Fprintf(&b, "file '%s'\n", framePaths[len(framePaths)-1])
	return os.WriteFile(path, []byte(b.String()), 0644)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
