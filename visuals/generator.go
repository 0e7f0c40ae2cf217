package visuals

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"

	"scary-story-pipeline/config"
	"scary-story-pipeline/types"
)

// Generator creates one illustrative image per story segment via the
// Gemini image models. Generation failures are logged and leave the
// segment without an image; the video stage substitutes a text frame.
type Generator struct {
	cfg    config.ImagesConfig
	client *genai.Client
}

// NewGenerator creates a Generator with the given API key
func NewGenerator(ctx context.Context, cfg config.ImagesConfig, apiKey string) (*Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Generator{cfg: cfg, client: client}, nil
}

// GenerateStoryImages splits the story into segments and generates an
// image for every segment long enough to illustrate. It returns the
// full ordered segment list; ImagePath is empty where generation was
// skipped or failed.
func (g *Generator) GenerateStoryImages(ctx context.Context, story *types.Story, imagesDir string) ([]types.Segment, error) {
	texts := SplitSegments(story.Text, g.cfg.SegmentType)
	if len(texts) == 0 {
		return nil, fmt.Errorf("story %s has no text to illustrate", story.ID)
	}
	log.Printf("[visuals] Split story into %d %ss", len(texts), g.cfg.SegmentType)

	storyDir := filepath.Join(imagesDir, fmt.Sprintf("%s_%ss", story.ID, g.cfg.SegmentType))
	if err := os.MkdirAll(storyDir, 0755); err != nil {
		return nil, fmt.Errorf("create images dir: %w", err)
	}

	segments := make([]types.Segment, len(texts))
	for i, text := range texts {
		segments[i] = types.Segment{Index: i, Text: text}
	}

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.MaxParallel)

	for i := range segments {
		if len(segments[i].Text) < g.cfg.MinSegmentChars {
			continue
		}
		eg.Go(func() error {
			outPath := filepath.Join(storyDir, fmt.Sprintf("%s_%03d.png", g.cfg.SegmentType, i+1))
			prompt := g.segmentPrompt(segments[i].Text, story.Title)

			if err := g.generateImage(gctx, prompt, outPath); err != nil {
				log.Printf("[visuals] Warning: segment %d image failed: %v — will use text frame", i, err)
				return nil
			}
			segments[i].ImagePath = outPath
			log.Printf("[visuals] ✅ Segment %d image saved: %s", i, outPath)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	generated := 0
	for _, seg := range segments {
		if seg.ImagePath != "" {
			generated++
		}
	}
	log.Printf("[visuals] Generated %d/%d segment images", generated, len(segments))

	return segments, nil
}

// CreateTitleImage generates a cover image for the story
func (g *Generator) CreateTitleImage(ctx context.Context, story *types.Story, outPath string) error {
	prompt := fmt.Sprintf(
		"Create a dramatic %s title card illustration for the horror story '%s'. "+
			"Based on this story excerpt: '%s' "+
			"Style: cinematic movie poster, dark atmosphere, mysterious, high contrast, "+
			"professional book cover design. Central focus on the main theme. "+
			"No text overlays - pure visual storytelling.",
		g.cfg.Style, story.Title, excerpt(story.Text, 300),
	)

	log.Printf("[visuals] Generating title image for: %q", story.Title)
	return g.generateImage(ctx, prompt, outPath)
}

func (g *Generator) segmentPrompt(segment, title string) string {
	return fmt.Sprintf(
		"Create a %s illustration based on this text: '%s' "+
			"Style: atmospheric, cinematic, dark mood, high contrast lighting. "+
			"Theme from '%s'. Focus on visual storytelling, "+
			"mysterious atmosphere, detailed environment. No text overlays.",
		g.cfg.Style, excerpt(segment, 200), title,
	)
}

// generateImage requests one IMAGE-modality generation and saves the
// bytes. Retries a couple of times; the image models time out now and
// then under load.
func (g *Generator) generateImage(ctx context.Context, prompt, outPath string) error {
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		data, err := g.requestImage(ctx, prompt)
		if err == nil {
			return os.WriteFile(outPath, data, 0644)
		}
		lastErr = err
		if ctx.Err() != nil {
			return ctx.Err()
		}
		time.Sleep(time.Duration(attempt) * 2 * time.Second)
	}
	return fmt.Errorf("image generation failed after 3 attempts: %w", lastErr)
}

func (g *Generator) requestImage(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.Model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"IMAGE"},
		})
	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("image response has no candidates")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}
		// Reject error payloads pretending to be images.
		if _, _, err := image.DecodeConfig(bytes.NewReader(part.InlineData.Data)); err != nil {
			return nil, fmt.Errorf("response is not a decodable image: %w", err)
		}
		return part.InlineData.Data, nil
	}
	return nil, fmt.Errorf("image response has no inline data")
}

func excerpt(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
