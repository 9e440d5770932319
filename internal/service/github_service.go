package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/careercompassai/backend/internal/config"
	"github.com/careercompassai/backend/internal/model"
	"github.com/go-resty/resty/v2"
)

const (
	maxBundleFiles   = 4
	maxFileChars     = 8000
	truncationMarker = "\n...(truncated)..."
	maxLanguages     = 5
)

// interestingFiles is the fixed priority list of root files worth bundling.
// README and manifest files tell the model more per token than code does.
var interestingFiles = map[string]bool{
	"README.md":        true,
	"package.json":     true,
	"requirements.txt": true,
	"pyproject.toml":   true,
	"main.py":          true,
	"app.py":           true,
	"server.js":        true,
	"index.js":         true,
	"App.tsx":          true,
	"index.html":       true,
	"go.mod":           true,
	"Cargo.toml":       true,
}

var (
	tokenSplitter = regexp.MustCompile(`[\s,]+`)
	repoPattern   = regexp.MustCompile(`(?:github\.com/|^)([a-zA-Z0-9-]{1,39})/([a-zA-Z0-9_.-]+)`)
)

type GithubServiceInterface interface {
	ParseRepoInput(input string) []model.RepoReference
	FetchRepoData(ctx context.Context, owner, repo string) (*model.ArtifactBundle, error)
}

// GithubService fetches repository context from the GitHub REST API. All
// calls are unauthenticated unless a token is configured, so callers must
// keep the total call volume bounded. No retries live at this layer; every
// failure degrades to partial or absent data.
type GithubService struct {
	client *resty.Client
}

func NewGithubService(cfg *config.GithubConfig) *GithubService {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/vnd.github+json")
	if cfg.Token != "" {
		client.SetHeader("Authorization", "Bearer "+cfg.Token)
	}
	return &GithubService{client: client}
}

// ParseRepoInput extracts normalized repository references from free-form
// text. Tokens that do not look like owner/repo (bare or behind a github.com
// prefix) are dropped silently; duplicates collapse on canonical URL with
// first-seen order preserved.
func (g *GithubService) ParseRepoInput(input string) []model.RepoReference {
	seen := make(map[string]bool)
	var refs []model.RepoReference

	for _, token := range tokenSplitter.Split(input, -1) {
		clean := strings.TrimRight(strings.TrimSpace(token), "/")
		if clean == "" {
			continue
		}
		m := repoPattern.FindStringSubmatch(clean)
		if m == nil {
			continue
		}
		url := fmt.Sprintf("https://github.com/%s/%s", m[1], m[2])
		if seen[url] {
			continue
		}
		seen[url] = true
		refs = append(refs, model.RepoReference{
			Owner:        m[1],
			Repo:         m[2],
			CanonicalURL: url,
		})
	}
	return refs
}

type repoMeta struct {
	Name    string `json:"name"`
	HTMLURL string `json:"html_url"`
}

type contentEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
}

type fileEnvelope struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// FetchRepoData retrieves metadata, a language-share summary and a bundle of
// interesting root files for one repository. A metadata failure fails the
// whole fetch; language and file failures only shrink the result.
func (g *GithubService) FetchRepoData(ctx context.Context, owner, repo string) (*model.ArtifactBundle, error) {
	var meta repoMeta
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&meta).
		Get(fmt.Sprintf("/repos/%s/%s", owner, repo))
	if err != nil {
		return nil, fmt.Errorf("fetch metadata for %s/%s: %w", owner, repo, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch metadata for %s/%s: %s", owner, repo, resp.Status())
	}

	return &model.ArtifactBundle{
		RepoName:        meta.Name,
		RepoURL:         meta.HTMLURL,
		LanguageSummary: g.fetchLanguageSummary(ctx, owner, repo),
		FilesBundle:     g.fetchFilesBundle(ctx, owner, repo),
	}, nil
}

// fetchLanguageSummary returns e.g. "Go 62%, TypeScript 31%, Shell 7%" for
// the top languages by byte share, or "" when the call fails.
func (g *GithubService) fetchLanguageSummary(ctx context.Context, owner, repo string) string {
	var langs map[string]int64
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&langs).
		Get(fmt.Sprintf("/repos/%s/%s/languages", owner, repo))
	if err != nil || resp.IsError() {
		return ""
	}

	var total int64
	for _, bytes := range langs {
		total += bytes
	}
	if total == 0 {
		return ""
	}

	type langShare struct {
		name  string
		bytes int64
	}
	shares := make([]langShare, 0, len(langs))
	for name, bytes := range langs {
		shares = append(shares, langShare{name, bytes})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].bytes != shares[j].bytes {
			return shares[i].bytes > shares[j].bytes
		}
		return shares[i].name < shares[j].name
	})
	if len(shares) > maxLanguages {
		shares = shares[:maxLanguages]
	}

	parts := make([]string, 0, len(shares))
	for _, s := range shares {
		// Exact half shares round away from zero.
		pct := math.Round(float64(s.bytes) / float64(total) * 100)
		parts = append(parts, fmt.Sprintf("%s %d%%", s.name, int(pct)))
	}
	return strings.Join(parts, ", ")
}

// fetchFilesBundle lists the repository root, keeps the interesting files,
// and concatenates up to maxBundleFiles of them as "FILE: path" blocks.
// Individual file failures are skipped without aborting the bundle.
func (g *GithubService) fetchFilesBundle(ctx context.Context, owner, repo string) string {
	var entries []contentEntry
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&entries).
		Get(fmt.Sprintf("/repos/%s/%s/contents", owner, repo))
	if err != nil || resp.IsError() {
		return ""
	}

	var found []contentEntry
	for _, entry := range entries {
		if entry.Type == "file" && interestingFiles[entry.Name] {
			found = append(found, entry)
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		return fileSortClass(found[i].Name) < fileSortClass(found[j].Name)
	})
	if len(found) > maxBundleFiles {
		found = found[:maxBundleFiles]
	}

	var bundle strings.Builder
	for _, entry := range found {
		content, err := g.fetchFileContent(ctx, owner, repo, entry.Path)
		if err != nil {
			log.Printf("Skipping file %s in %s/%s: %v", entry.Path, owner, repo, err)
			continue
		}
		bundle.WriteString(fmt.Sprintf("FILE: %s\n%s\n\n", entry.Path, truncateContent(content)))
	}
	return bundle.String()
}

// fileSortClass orders README first, manifest/config files second, code last.
func fileSortClass(name string) int {
	switch {
	case strings.HasPrefix(name, "README"):
		return 0
	case strings.Contains(name, "json") || strings.Contains(name, "txt"):
		return 1
	default:
		return 2
	}
}

func truncateContent(content string) string {
	if len(content) <= maxFileChars {
		return content
	}
	return content[:maxFileChars] + truncationMarker
}

func (g *GithubService) fetchFileContent(ctx context.Context, owner, repo, path string) (string, error) {
	var envelope fileEnvelope
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&envelope).
		Get(fmt.Sprintf("/repos/%s/%s/contents/%s", owner, repo, path))
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("fetch %s: %s", path, resp.Status())
	}
	if envelope.Encoding != "base64" || envelope.Content == "" {
		return "", fmt.Errorf("fetch %s: unexpected content envelope", path)
	}

	// GitHub wraps base64 payloads with newlines.
	raw := strings.ReplaceAll(envelope.Content, "\n", "")
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", path, err)
	}
	return string(decoded), nil
}
