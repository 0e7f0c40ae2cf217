package types

// Story is one scraped story, immutable once fetched.
// Field names mirror the persisted story JSON record.
type Story struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Score       int     `json:"score"`
	UpvoteRatio float64 `json:"upvote_ratio"`
	CreatedUTC  int64   `json:"created_utc"`
	CreatedDate string  `json:"created_date"`
	URL         string  `json:"url"`
	Text        string  `json:"text"`
	NumComments int     `json:"num_comments"`
	Awards      int     `json:"awards"`
}

// Segment is one narration-aligned slice of story text, optionally
// paired with a generated image. Index matches playback order.
type Segment struct {
	Index     int    `json:"index"`
	Text      string `json:"text"`
	ImagePath string `json:"image_path,omitempty"`
}

// VideoArtifact is the final output of one assembly run.
// The caller owns it once returned.
type VideoArtifact struct {
	Path            string `json:"path"`
	SourceAudioPath string `json:"source_audio_path"`
	SourceTitle     string `json:"source_title"`
}

// PipelineState tracks the full state of one pipeline run
type PipelineState struct {
	RunID       string         `json:"run_id"`
	StartedAt   string         `json:"started_at"`
	CompletedAt string         `json:"completed_at"`
	Story       *Story         `json:"story,omitempty"`
	AudioFile   string         `json:"audio_file,omitempty"`
	Segments    []Segment      `json:"segments,omitempty"`
	Video       *VideoArtifact `json:"video,omitempty"`
	Error       string         `json:"error,omitempty"`
}
