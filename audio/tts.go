package audio

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"

	"scary-story-pipeline/config"
)

// Synthesizer narrates story text via the Gemini TTS models and writes
// the result as a WAV file.
type Synthesizer struct {
	cfg    config.AudioConfig
	client *genai.Client
}

// NewSynthesizer creates a Synthesizer with the given API key
func NewSynthesizer(ctx context.Context, cfg config.AudioConfig, apiKey string) (*Synthesizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Synthesizer{cfg: cfg, client: client}, nil
}

// SynthesizeToFile narrates text with the configured prebuilt voice and
// saves the PCM response at outPath as a 16-bit WAV.
func (s *Synthesizer) SynthesizeToFile(ctx context.Context, text, outPath string) error {
	if text == "" {
		return fmt.Errorf("no story text to narrate")
	}

	log.Printf("[audio] Synthesizing narration (%d chars, voice %s)...", len(text), s.cfg.Voice)

	resp, err := s.client.Models.GenerateContent(ctx, s.cfg.Model, genai.Text(text),
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &genai.SpeechConfig{
				VoiceConfig: &genai.VoiceConfig{
					PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
						VoiceName: s.cfg.Voice,
					},
				},
			},
		})
	if err != nil {
		return fmt.Errorf("tts generate: %w", err)
	}

	pcm, err := extractAudio(resp)
	if err != nil {
		return err
	}

	if err := WriteWAV(outPath, pcm, s.cfg.Channels, s.cfg.SampleRate, 2); err != nil {
		return fmt.Errorf("write wav: %w", err)
	}

	log.Printf("[audio] ✅ Audio saved: %s", outPath)
	return nil
}

func extractAudio(resp *genai.GenerateContentResponse) ([]byte, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("tts response has no candidates")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data, nil
		}
	}
	return nil, fmt.Errorf("tts response has no audio data")
}
