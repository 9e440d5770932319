package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// PipelineConfig holds the tunables of the analysis orchestration: the
// concurrency bounds are configuration, not accidents of control flow.
type PipelineConfig struct {
	RepoLimit           int
	FetchConcurrency    int
	AnalysisConcurrency int
	PacingInterval      time.Duration
	MaxRetries          int
	CapstoneRetries     int
	RetryBaseDelay      time.Duration
}

var (
	pipelineConfig *PipelineConfig
	pipelineOnce   sync.Once
)

func LoadPipelineConfig() *PipelineConfig {
	pipelineOnce.Do(func() {
		pipelineConfig = &PipelineConfig{
			RepoLimit:           getenvInt("PIPELINE_REPO_LIMIT", 3),
			FetchConcurrency:    getenvInt("PIPELINE_FETCH_CONCURRENCY", 2),
			AnalysisConcurrency: getenvInt("PIPELINE_ANALYSIS_CONCURRENCY", 1),
			PacingInterval:      getenvDuration("PIPELINE_PACING_MS", 2*time.Second),
			MaxRetries:          getenvInt("PIPELINE_MAX_RETRIES", 3),
			CapstoneRetries:     getenvInt("PIPELINE_CAPSTONE_RETRIES", 4),
			RetryBaseDelay:      getenvDuration("PIPELINE_RETRY_BASE_DELAY_MS", 2*time.Second),
		}
	})
	return pipelineConfig
}

func getenvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}
