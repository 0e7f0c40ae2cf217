package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Research ResearchConfig `yaml:"research"`
	Audio    AudioConfig    `yaml:"audio"`
	Images   ImagesConfig   `yaml:"images"`
	Video    VideoConfig    `yaml:"video"`
	Paths    PathsConfig    `yaml:"paths"`
}

type ResearchConfig struct {
	Subreddit    string `yaml:"subreddit"`
	TimeFilter   string `yaml:"time_filter"`
	Limit        int    `yaml:"limit"`
	MinBodyChars int    `yaml:"min_body_chars"`
}

type AudioConfig struct {
	Model      string `yaml:"model"`
	Voice      string `yaml:"voice"`
	SampleRate int    `yaml:"sample_rate"`
	Channels   int    `yaml:"channels"`
}

type ImagesConfig struct {
	Model           string `yaml:"model"`
	Style           string `yaml:"style"`
	SegmentType     string `yaml:"segment_type"` // paragraph | sentence
	MaxParallel     int    `yaml:"max_parallel"`
	MinSegmentChars int    `yaml:"min_segment_chars"`
}

type VideoConfig struct {
	Width             int     `yaml:"width"`
	Height            int     `yaml:"height"`
	FontSize          float64 `yaml:"font_size"`
	FontFile          string  `yaml:"font_file"`
	MinSegmentSeconds float64 `yaml:"min_segment_seconds"`
	Preset            string  `yaml:"preset"`
	CRF               int     `yaml:"crf"`
	AudioBitrate      string  `yaml:"audio_bitrate"`
}

type PathsConfig struct {
	Stories string `yaml:"stories"`
	Audio   string `yaml:"audio"`
	Images  string `yaml:"images"`
	Videos  string `yaml:"videos"`
}

// Load reads config.yaml and returns a Config struct with defaults applied
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a Config with all defaults and no file input
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Research.Subreddit == "" {
		c.Research.Subreddit = "scarystories"
	}
	if c.Research.TimeFilter == "" {
		c.Research.TimeFilter = "week"
	}
	if c.Research.Limit == 0 {
		c.Research.Limit = 25
	}
	if c.Research.MinBodyChars == 0 {
		c.Research.MinBodyChars = 50
	}
	if c.Audio.Model == "" {
		c.Audio.Model = "gemini-2.5-flash-preview-tts"
	}
	if c.Audio.Voice == "" {
		c.Audio.Voice = "Kore"
	}
	if c.Audio.SampleRate == 0 {
		c.Audio.SampleRate = 24000
	}
	if c.Audio.Channels == 0 {
		c.Audio.Channels = 1
	}
	if c.Images.Model == "" {
		c.Images.Model = "gemini-2.5-flash-exp"
	}
	if c.Images.Style == "" {
		c.Images.Style = "dark horror art"
	}
	if c.Images.SegmentType == "" {
		c.Images.SegmentType = "paragraph"
	}
	if c.Images.MaxParallel == 0 {
		c.Images.MaxParallel = 3
	}
	if c.Images.MinSegmentChars == 0 {
		c.Images.MinSegmentChars = 10
	}
	if c.Video.Width == 0 {
		c.Video.Width = 1920
	}
	if c.Video.Height == 0 {
		c.Video.Height = 1080
	}
	if c.Video.FontSize == 0 {
		c.Video.FontSize = 48
	}
	if c.Video.MinSegmentSeconds == 0 {
		c.Video.MinSegmentSeconds = 2.0
	}
	if c.Video.Preset == "" {
		c.Video.Preset = "medium"
	}
	if c.Video.CRF == 0 {
		c.Video.CRF = 23
	}
	if c.Video.AudioBitrate == "" {
		c.Video.AudioBitrate = "128k"
	}
	if c.Paths.Stories == "" {
		c.Paths.Stories = "reddit_stories"
	}
	if c.Paths.Audio == "" {
		c.Paths.Audio = "audio"
	}
	if c.Paths.Images == "" {
		c.Paths.Images = "images"
	}
	if c.Paths.Videos == "" {
		c.Paths.Videos = "videos"
	}
}
