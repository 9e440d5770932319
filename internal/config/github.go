package config

import (
	"os"
	"sync"
)

type GithubConfig struct {
	BaseURL string
	Token   string
}

var (
	githubConfig *GithubConfig
	githubOnce   sync.Once
)

func LoadGithubConfig() *GithubConfig {
	githubOnce.Do(func() {
		baseURL := os.Getenv("GITHUB_API_URL")
		if baseURL == "" {
			baseURL = "https://api.github.com"
		}
		githubConfig = &GithubConfig{
			BaseURL: baseURL,
			// Unauthenticated works but hits low rate ceilings; a token
			// raises them without changing any behavior.
			Token: os.Getenv("GITHUB_TOKEN"),
		}
	})
	return githubConfig
}
