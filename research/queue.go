package research

import (
	"os"
	"regexp"
	"strings"

	"scary-story-pipeline/types"
)

var invalidFilenameChars = regexp.MustCompile(`[^\w\-_ ]`)

// SanitizeFilename makes a story title safe to use as a file name:
// strip invalid characters, cap at 50 chars, spaces to underscores.
func SanitizeFilename(title string) string {
	name := invalidFilenameChars.ReplaceAllString(title, "")
	if len(name) > 50 {
		name = name[:50]
	}
	name = strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	if name == "" {
		return "untitled"
	}
	return name
}

// AlreadyProcessed reports whether a narration WAV for this story ID
// already exists in audioDir.
func AlreadyProcessed(audioDir, storyID string) bool {
	if storyID == "" {
		return false
	}
	entries, err := os.ReadDir(audioDir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".wav") && strings.Contains(name, storyID) {
			return true
		}
	}
	return false
}

// NextUnprocessed returns the first story (in given order) that has no
// narration audio yet, or nil when every candidate is done.
func NextUnprocessed(stories []*types.Story, audioDir string) *types.Story {
	for _, story := range stories {
		if !AlreadyProcessed(audioDir, story.ID) {
			return story
		}
	}
	return nil
}
