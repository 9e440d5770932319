package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/careercompassai/backend/internal/config"
	"google.golang.org/genai"
)

type GeminiServiceInterface interface {
	GenerateWithRetry(ctx context.Context, model string, contents []*genai.Content, genConfig *genai.GenerateContentConfig, maxRetries int) (*genai.GenerateContentResponse, error)
	GenerateSpeech(ctx context.Context, text string) ([]byte, error)
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

type generateFunc func(ctx context.Context, model string, contents []*genai.Content, genConfig *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

// GeminiService is the single choke point for model generation calls. All
// backoff logic lives here: quota rejections are retried with a doubling
// delay, everything else propagates to the caller untouched.
type GeminiService struct {
	client         *genai.Client
	model          string
	ttsModel       string
	requestTimeout time.Duration
	baseDelay      time.Duration
	maxRetries     int

	generate generateFunc
	sleep    func(ctx context.Context, d time.Duration) error
}

func NewGeminiService(ctx context.Context, geminiCfg *config.GeminiConfig, pipeCfg *config.PipelineConfig) (*GeminiService, error) {
	if geminiCfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  geminiCfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	s := &GeminiService{
		client:         client,
		model:          geminiCfg.Model,
		ttsModel:       geminiCfg.TTSModel,
		requestTimeout: geminiCfg.RequestTimeout,
		baseDelay:      pipeCfg.RetryBaseDelay,
		maxRetries:     pipeCfg.MaxRetries,
	}
	s.generate = s.callModel
	s.sleep = sleepContext
	return s, nil
}

func (s *GeminiService) callModel(ctx context.Context, model string, contents []*genai.Content, genConfig *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()
	return s.client.Models.GenerateContent(callCtx, model, contents, genConfig)
}

// GenerateWithRetry issues one generation call with bounded exponential
// backoff. maxRetries counts retry attempts after the first call; only
// quota/rate-limit failures are eligible for retry, and the first attempt is
// never delayed.
func (s *GeminiService) GenerateWithRetry(ctx context.Context, model string, contents []*genai.Content, genConfig *genai.GenerateContentConfig, maxRetries int) (*genai.GenerateContentResponse, error) {
	if model == "" {
		model = s.model
	}
	if maxRetries < 0 {
		maxRetries = s.maxRetries
	}

	delay := s.baseDelay
	for attempt := 0; ; attempt++ {
		resp, err := s.generate(ctx, model, contents, genConfig)
		if err == nil {
			return resp, nil
		}

		if !isQuotaError(err) {
			return nil, err
		}
		if attempt >= maxRetries {
			return nil, fmt.Errorf("max retries (%d) exceeded: %w", maxRetries, err)
		}

		log.Printf("Quota rejection on attempt %d/%d, backing off %v: %v",
			attempt+1, maxRetries+1, delay, err)
		if serr := s.sleep(ctx, delay); serr != nil {
			return nil, serr
		}
		delay *= 2
	}
}

// GenerateSpeech asks the TTS model for an audio rendition of text. A nil
// payload with nil error means the provider returned no audio; the caller
// falls back to on-device synthesis.
func (s *GeminiService) GenerateSpeech(ctx context.Context, text string) ([]byte, error) {
	genConfig := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: "Kore"},
			},
		},
	}

	resp, err := s.GenerateWithRetry(ctx, s.ttsModel, genai.Text(text), genConfig, s.maxRetries)
	if err != nil {
		return nil, err
	}

	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, nil
			}
		}
	}
	return nil, nil
}

// Transcribe converts an audio payload into plain text.
func (s *GeminiService) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	contents := []*genai.Content{genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromBytes(audio, mimeType),
		genai.NewPartFromText("Transcribe this audio exactly. Return ONLY the text."),
	}, genai.RoleUser)}

	resp, err := s.GenerateWithRetry(ctx, s.model, contents, nil, s.maxRetries)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("no text content in transcription response")
	}
	return text, nil
}

// isQuotaError reports whether err is a rate-limit/quota rejection, the only
// failure class eligible for automatic retry. The structured APIError check
// comes first; the message-substring check covers transports that lose the
// status code.
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED"
	}

	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(strings.ToLower(msg), "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
