package config

import (
	"os"
	"sync"
	"time"
)

type GeminiConfig struct {
	APIKey         string
	Model          string
	TTSModel       string
	RequestTimeout time.Duration
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		model := os.Getenv("GEMINI_MODEL")
		if model == "" {
			model = "gemini-2.5-flash"
		}
		ttsModel := os.Getenv("GEMINI_TTS_MODEL")
		if ttsModel == "" {
			ttsModel = "gemini-2.5-flash-preview-tts"
		}
		geminiConfig = &GeminiConfig{
			APIKey:         os.Getenv("GEMINI_API_KEY"),
			Model:          model,
			TTSModel:       ttsModel,
			RequestTimeout: getenvDuration("GEMINI_REQUEST_TIMEOUT_MS", 90*time.Second),
		}
	})
	return geminiConfig
}
