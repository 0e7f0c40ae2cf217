package video

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"scary-story-pipeline/types"
)

// Job is the top-level entry for one story video: load the story
// record, delegate to the Assembler, surface the artifact.
type Job struct {
	assembler *Assembler
}

// NewJob creates a Job around an Assembler
func NewJob(assembler *Assembler) *Job {
	return &Job{assembler: assembler}
}

// Run loads the story record at storyPath (read-only, for the title)
// and assembles the video. Record-load failures wrap
// types.ErrRecordLoad; everything else is the Assembler's result
// unchanged.
func (j *Job) Run(ctx context.Context, storyPath, audioPath string, segments []types.Segment, outputPath string) (*types.VideoArtifact, error) {
	data, err := os.ReadFile(storyPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrRecordLoad, storyPath, err)
	}

	var story types.Story
	if err := json.Unmarshal(data, &story); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrRecordLoad, storyPath, err)
	}

	title := story.Title
	if title == "" {
		title = "Unknown Story"
	}

	log.Printf("[video] Generating video for: %q", title)
	return j.assembler.Assemble(ctx, segments, audioPath, outputPath, title)
}
