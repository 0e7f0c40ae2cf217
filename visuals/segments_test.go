package visuals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSegmentsParagraphs(t *testing.T) {
	text := "First paragraph here.\n\nSecond paragraph.\n   \nThird one."

	segments := SplitSegments(text, "paragraph")

	assert.Equal(t, []string{
		"First paragraph here.",
		"Second paragraph.",
		"Third one.",
	}, segments)
}

func TestSplitSegmentsSentences(t *testing.T) {
	text := "It was dark. Was anyone there?! I waited... nothing came"

	segments := SplitSegments(text, "sentence")

	assert.Equal(t, []string{
		"It was dark.",
		"Was anyone there?!",
		"I waited...",
		"nothing came",
	}, segments)
}

func TestSplitSegmentsEmpty(t *testing.T) {
	assert.Empty(t, SplitSegments("", "paragraph"))
	assert.Empty(t, SplitSegments("   \n\n  ", "paragraph"))
	assert.Empty(t, SplitSegments("", "sentence"))
}

func TestSplitSegmentsSingleParagraph(t *testing.T) {
	segments := SplitSegments("one paragraph, single newlines\nstay together", "paragraph")

	assert.Equal(t, []string{"one paragraph, single newlines\nstay together"}, segments)
}

func TestSplitSegmentsDeterministic(t *testing.T) {
	text := "A. B. C.\n\nD!"
	assert.Equal(t, SplitSegments(text, "sentence"), SplitSegments(text, "sentence"))
	assert.Equal(t, SplitSegments(text, "paragraph"), SplitSegments(text, "paragraph"))
}
