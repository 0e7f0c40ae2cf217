package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"scary-story-pipeline/audio"
	"scary-story-pipeline/config"
	"scary-story-pipeline/research"
	"scary-story-pipeline/types"
	"scary-story-pipeline/video"
	"scary-story-pipeline/visuals"
)

func main() {
	// Load .env (local dev only)
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ensure required dirs exist
	for _, dir := range []string{cfg.Paths.Stories, cfg.Paths.Audio, cfg.Paths.Images, cfg.Paths.Videos} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create dir %s: %v", dir, err)
		}
	}

	if _, err := exec.LookPath("ffmpeg"); err != nil {
		log.Printf("⚠️  ffmpeg not found in PATH — video assembly will fail")
	}

	runID := uuid.NewString()[:8]
	log.Printf("🎃 Scary Story Pipeline starting — Run ID: %s", runID)

	ctx := context.Background()
	state := &types.PipelineState{
		RunID:     runID,
		StartedAt: time.Now().UTC().Format(time.RFC3339),
	}

	// Save state on exit
	defer func() {
		state.CompletedAt = time.Now().UTC().Format(time.RFC3339)
		saveJSON(filepath.Join(cfg.Paths.Videos, fmt.Sprintf("pipeline_state_%s.json", runID)), state)
		if state.Error != "" {
			log.Printf("❌ Pipeline failed: %s", state.Error)
			os.Exit(1)
		}
	}()

	apiKey := os.Getenv("GEMINI_API_KEY")

	// ─────────────────────────────────────────────
	// STAGE 1: Research
	// ─────────────────────────────────────────────
	log.Println("━━━ STAGE 1: Research ━━━")
	scraper, err := research.NewScraper(cfg.Research)
	if err != nil {
		state.Error = fmt.Sprintf("Stage 1 Research init: %v", err)
		return
	}
	stories, err := scraper.TopStories(ctx)
	if err != nil {
		state.Error = fmt.Sprintf("Stage 1 Research: %v", err)
		return
	}
	research.StoryStats(stories)

	story := research.NextUnprocessed(stories, cfg.Paths.Audio)
	if story == nil {
		log.Println("🎉 All top stories have already been processed!")
		return
	}
	log.Printf("🎯 Selected story: %q (score: %d, id: %s)", story.Title, story.Score, story.ID)
	state.Story = story

	baseName := fmt.Sprintf("%s_%s", research.SanitizeFilename(story.Title), story.ID)
	storyPath := filepath.Join(cfg.Paths.Stories, baseName+".json")
	audioPath := filepath.Join(cfg.Paths.Audio, baseName+".wav")
	outputPath := filepath.Join(cfg.Paths.Videos, baseName+".mp4")

	if err := research.SaveStoryJSON(story, storyPath); err != nil {
		state.Error = fmt.Sprintf("Stage 1 save story: %v", err)
		return
	}

	// ─────────────────────────────────────────────
	// STAGE 2: Narration (TTS)
	// ─────────────────────────────────────────────
	log.Println("━━━ STAGE 2: Narration ━━━")
	synth, err := audio.NewSynthesizer(ctx, cfg.Audio, apiKey)
	if err != nil {
		state.Error = fmt.Sprintf("Stage 2 Narration init: %v", err)
		return
	}
	if err := synth.SynthesizeToFile(ctx, story.Text, audioPath); err != nil {
		state.Error = fmt.Sprintf("Stage 2 Narration: %v", err)
		return
	}
	state.AudioFile = audioPath

	// ─────────────────────────────────────────────
	// STAGE 3: Images
	// ─────────────────────────────────────────────
	log.Println("━━━ STAGE 3: Images ━━━")
	generator, err := visuals.NewGenerator(ctx, cfg.Images, apiKey)
	if err != nil {
		state.Error = fmt.Sprintf("Stage 3 Images init: %v", err)
		return
	}
	segments, err := generator.GenerateStoryImages(ctx, story, cfg.Paths.Images)
	if err != nil {
		state.Error = fmt.Sprintf("Stage 3 Images: %v", err)
		return
	}
	state.Segments = segments

	titlePath := filepath.Join(cfg.Paths.Images, baseName+"_title.png")
	if err := generator.CreateTitleImage(ctx, story, titlePath); err != nil {
		log.Printf("⚠️  Title image failed: %v — continuing without it", err)
	}

	// ─────────────────────────────────────────────
	// STAGE 4: Video Assembly
	// ─────────────────────────────────────────────
	log.Println("━━━ STAGE 4: Video Assembly ━━━")
	job := video.NewJob(video.NewAssembler(cfg.Video, nil))
	artifact, err := job.Run(ctx, storyPath, audioPath, segments, outputPath)
	if err != nil {
		state.Error = fmt.Sprintf("Stage 4 Video: %v", err)
		return
	}
	state.Video = artifact

	log.Printf("🎉 Story video generated successfully!")
	log.Printf("📹 Video saved to: %s", artifact.Path)
}

func saveJSON(path string, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("Warning: could not marshal JSON for %s: %v", path, err)
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Printf("Warning: could not save %s: %v", path, err)
	}
}
