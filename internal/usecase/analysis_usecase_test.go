package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/careercompassai/backend/internal/config"
	"github.com/careercompassai/backend/internal/model"
	"google.golang.org/genai"
)

func testPipelineConfig() *config.PipelineConfig {
	return &config.PipelineConfig{
		RepoLimit:           3,
		FetchConcurrency:    2,
		AnalysisConcurrency: 1,
		PacingInterval:      time.Millisecond,
		MaxRetries:          0,
		CapstoneRetries:     0,
		RetryBaseDelay:      time.Millisecond,
	}
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: text}}}},
		},
	}
}

// fakeGemini routes canned responses by the response schema of the call, so
// one fake serves the multi-stage pipelines without ordering assumptions.
type fakeGemini struct {
	mu    sync.Mutex
	calls int

	bySchema    map[*genai.Schema]string
	errBySchema map[*genai.Schema]error

	noSchemaText string
	noSchemaErr  error

	speech        []byte
	speechErr     error
	transcript    string
	transcribeErr error
}

func (f *fakeGemini) GenerateWithRetry(ctx context.Context, modelName string, contents []*genai.Content, genConfig *genai.GenerateContentConfig, maxRetries int) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if genConfig == nil || genConfig.ResponseSchema == nil {
		if f.noSchemaErr != nil {
			return nil, f.noSchemaErr
		}
		return textResponse(f.noSchemaText), nil
	}
	if err := f.errBySchema[genConfig.ResponseSchema]; err != nil {
		return nil, err
	}
	text, ok := f.bySchema[genConfig.ResponseSchema]
	if !ok {
		return nil, fmt.Errorf("no canned response for schema")
	}
	return textResponse(text), nil
}

func (f *fakeGemini) GenerateSpeech(ctx context.Context, text string) ([]byte, error) {
	return f.speech, f.speechErr
}

func (f *fakeGemini) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	return f.transcript, f.transcribeErr
}

func (f *fakeGemini) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeGithub struct {
	refs     []model.RepoReference
	bundles  map[string]*model.ArtifactBundle
	fetchErr map[string]error
}

func (f *fakeGithub) ParseRepoInput(input string) []model.RepoReference {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	return f.refs
}

func (f *fakeGithub) FetchRepoData(ctx context.Context, owner, repo string) (*model.ArtifactBundle, error) {
	key := owner + "/" + repo
	if err := f.fetchErr[key]; err != nil {
		return nil, err
	}
	bundle, ok := f.bundles[key]
	if !ok {
		return nil, fmt.Errorf("no bundle for %s", key)
	}
	return bundle, nil
}

func projectJSON(name, projectType, description string) string {
	deep := model.ProjectDeepAnalysis{
		ProjectName:              name,
		ShortDescription:         description,
		ProjectType:              projectType,
		TechStack:                []string{"Go"},
		ComplexityRating:         4,
		RecommendedResumeBullets: []string{"built " + name},
		ImprovementSuggestions:   []string{"add tests"},
	}
	raw, _ := json.Marshal(deep)
	return string(raw)
}

func capstoneJSON(t *testing.T) string {
	t.Helper()
	result := model.AnalysisResult{
		TextSummaries: model.TextSummaries{
			CandidateName:  "Ada",
			ProfileSummary: "Strong backend engineer.",
		},
		GithubProjects:    []model.GithubProject{},
		PortfolioTemplate: "<html></html>",
	}
	raw, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal capstone fixture: %v", err)
	}
	return string(raw)
}

func highlightsJSON() string {
	hl := model.ResumeHighlights{
		OverallFeedback: "Solid resume overall.",
		Segments: []model.ResumeHighlightSegment{
			{ID: "s1", Rating: model.RatingGreen},
			{ID: "s2", Rating: model.RatingRed},
		},
		// Wrong on purpose; Recount must fix it.
		SummaryCounts: model.HighlightSummaryCounts{Green: 7},
	}
	raw, _ := json.Marshal(hl)
	return string(raw)
}

func repoRef(owner, repo string) model.RepoReference {
	return model.RepoReference{
		Owner:        owner,
		Repo:         repo,
		CanonicalURL: fmt.Sprintf("https://github.com/%s/%s", owner, repo),
	}
}

func bundleFor(repo string) *model.ArtifactBundle {
	return &model.ArtifactBundle{
		RepoName:        repo,
		RepoURL:         "https://github.com/x/" + repo,
		LanguageSummary: "Go 100%",
		FilesBundle:     "FILE: README.md\n# " + repo + "\n\n",
	}
}

func TestAnalyzeReposMapsProjects(t *testing.T) {
	gemini := &fakeGemini{
		bySchema: map[*genai.Schema]string{
			projectDeepAnalysisSchema: projectJSON("alpha", "CLI Tool", "parses logs"),
		},
	}
	github := &fakeGithub{
		refs:    []model.RepoReference{repoRef("x", "alpha")},
		bundles: map[string]*model.ArtifactBundle{"x/alpha": bundleFor("alpha")},
	}
	uc := NewAnalysisUsecase(gemini, github, testPipelineConfig(), "m")

	projects := uc.AnalyzeRepos(context.Background(), "x/alpha")
	if len(projects) != 1 {
		t.Fatalf("got %d projects, want 1", len(projects))
	}
	if projects[0].Name != "alpha" {
		t.Errorf("Name = %q, want alpha", projects[0].Name)
	}
	if projects[0].Summary != "CLI Tool: parses logs" {
		t.Errorf("Summary = %q, want type-prefixed description", projects[0].Summary)
	}
}

func TestAnalyzeReposCapsAtLimit(t *testing.T) {
	gemini := &fakeGemini{
		bySchema: map[*genai.Schema]string{
			projectDeepAnalysisSchema: projectJSON("p", "Service", "d"),
		},
	}
	github := &fakeGithub{
		refs: []model.RepoReference{
			repoRef("x", "a"), repoRef("x", "b"), repoRef("x", "c"), repoRef("x", "d"),
		},
		bundles: map[string]*model.ArtifactBundle{
			"x/a": bundleFor("a"), "x/b": bundleFor("b"),
			"x/c": bundleFor("c"), "x/d": bundleFor("d"),
		},
	}
	uc := NewAnalysisUsecase(gemini, github, testPipelineConfig(), "m")

	projects := uc.AnalyzeRepos(context.Background(), "four repos")
	if len(projects) != 3 {
		t.Errorf("got %d projects, want 3 (repo limit)", len(projects))
	}
	if gemini.callCount() != 3 {
		t.Errorf("model called %d times, want 3", gemini.callCount())
	}
}

func TestAnalyzeReposDropsFailedFetch(t *testing.T) {
	gemini := &fakeGemini{
		bySchema: map[*genai.Schema]string{
			projectDeepAnalysisSchema: projectJSON("beta", "Library", "does things"),
		},
	}
	github := &fakeGithub{
		refs:     []model.RepoReference{repoRef("x", "gone"), repoRef("x", "beta")},
		bundles:  map[string]*model.ArtifactBundle{"x/beta": bundleFor("beta")},
		fetchErr: map[string]error{"x/gone": errors.New("404 Not Found")},
	}
	uc := NewAnalysisUsecase(gemini, github, testPipelineConfig(), "m")

	projects := uc.AnalyzeRepos(context.Background(), "x/gone x/beta")
	if len(projects) != 1 {
		t.Fatalf("got %d projects, want 1", len(projects))
	}
	if projects[0].Name != "beta" {
		t.Errorf("surviving project = %q, want beta", projects[0].Name)
	}
}

func TestAnalyzeReposSkipsInvalidModelResponse(t *testing.T) {
	gemini := &fakeGemini{
		bySchema: map[*genai.Schema]string{
			projectDeepAnalysisSchema: `{"project_name": "incomplete"}`,
		},
	}
	github := &fakeGithub{
		refs:    []model.RepoReference{repoRef("x", "alpha")},
		bundles: map[string]*model.ArtifactBundle{"x/alpha": bundleFor("alpha")},
	}
	uc := NewAnalysisUsecase(gemini, github, testPipelineConfig(), "m")

	if projects := uc.AnalyzeRepos(context.Background(), "x/alpha"); len(projects) != 0 {
		t.Errorf("got %d projects, want 0 for invalid response", len(projects))
	}
}

func TestAnalyzeReposEmptyInput(t *testing.T) {
	gemini := &fakeGemini{}
	uc := NewAnalysisUsecase(gemini, &fakeGithub{}, testPipelineConfig(), "m")

	if projects := uc.AnalyzeRepos(context.Background(), "   "); projects != nil {
		t.Errorf("got %v, want nil for blank input", projects)
	}
	if gemini.callCount() != 0 {
		t.Errorf("model called %d times, want 0", gemini.callCount())
	}
}

func TestAnalyzeResumeHighlightsRecounts(t *testing.T) {
	gemini := &fakeGemini{
		bySchema: map[*genai.Schema]string{
			resumeHighlightsSchema: highlightsJSON(),
		},
	}
	uc := NewAnalysisUsecase(gemini, &fakeGithub{}, testPipelineConfig(), "m")

	hl := uc.AnalyzeResumeHighlights(context.Background(), []byte("pdf"), "application/pdf")
	if hl == nil {
		t.Fatal("expected highlights")
	}
	want := model.HighlightSummaryCounts{Green: 1, Red: 1}
	if hl.SummaryCounts != want {
		t.Errorf("SummaryCounts = %+v, want %+v", hl.SummaryCounts, want)
	}
}

func TestAnalyzeResumeHighlightsRejectsBadRating(t *testing.T) {
	bad := `{"overall_feedback":"ok","segments":[{"id":"s1","rating":"purple"}],"summary_counts":{"green":0,"yellow":0,"red":0}}`
	gemini := &fakeGemini{
		bySchema: map[*genai.Schema]string{resumeHighlightsSchema: bad},
	}
	uc := NewAnalysisUsecase(gemini, &fakeGithub{}, testPipelineConfig(), "m")

	if hl := uc.AnalyzeResumeHighlights(context.Background(), []byte("pdf"), "application/pdf"); hl != nil {
		t.Errorf("expected nil for unknown rating, got %+v", hl)
	}
}

func TestAnalyzeProfileRequiresResume(t *testing.T) {
	uc := NewAnalysisUsecase(&fakeGemini{}, &fakeGithub{}, testPipelineConfig(), "m")
	if _, err := uc.AnalyzeProfile(context.Background(), nil, "", "", ""); !errors.Is(err, ErrResumeRequired) {
		t.Errorf("err = %v, want ErrResumeRequired", err)
	}
}

func TestAnalyzeProfileOverlaysSideChannels(t *testing.T) {
	gemini := &fakeGemini{
		bySchema: map[*genai.Schema]string{
			projectDeepAnalysisSchema: projectJSON("alpha", "Service", "serves"),
			resumeHighlightsSchema:    highlightsJSON(),
			analysisResultSchema:      capstoneJSON(t),
		},
	}
	github := &fakeGithub{
		refs:    []model.RepoReference{repoRef("x", "alpha")},
		bundles: map[string]*model.ArtifactBundle{"x/alpha": bundleFor("alpha")},
	}
	uc := NewAnalysisUsecase(gemini, github, testPipelineConfig(), "m")

	result, err := uc.AnalyzeProfile(context.Background(), []byte("pdf"), "application/pdf", "Backend Engineer JD", "x/alpha")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.GithubProjects) != 1 || result.GithubProjects[0].Name != "alpha" {
		t.Errorf("GithubProjects = %+v, want the side-channel project", result.GithubProjects)
	}
	if result.ResumeHighlights == nil {
		t.Fatal("ResumeHighlights not overlaid")
	}
	if result.ResumeHighlights.SummaryCounts != (model.HighlightSummaryCounts{Green: 1, Red: 1}) {
		t.Errorf("SummaryCounts = %+v", result.ResumeHighlights.SummaryCounts)
	}
}

func TestAnalyzeProfileSideChannelFailuresAreNonFatal(t *testing.T) {
	gemini := &fakeGemini{
		bySchema: map[*genai.Schema]string{
			analysisResultSchema: capstoneJSON(t),
		},
		errBySchema: map[*genai.Schema]error{
			projectDeepAnalysisSchema: errors.New("boom"),
			resumeHighlightsSchema:    errors.New("boom"),
		},
	}
	github := &fakeGithub{
		refs:    []model.RepoReference{repoRef("x", "alpha")},
		bundles: map[string]*model.ArtifactBundle{"x/alpha": bundleFor("alpha")},
	}
	uc := NewAnalysisUsecase(gemini, github, testPipelineConfig(), "m")

	result, err := uc.AnalyzeProfile(context.Background(), []byte("pdf"), "", "", "x/alpha")
	if err != nil {
		t.Fatalf("side-channel failures must not abort the analysis: %v", err)
	}
	if len(result.GithubProjects) != 0 {
		t.Errorf("GithubProjects = %+v, want none", result.GithubProjects)
	}
	if result.ResumeHighlights != nil {
		t.Errorf("ResumeHighlights = %+v, want nil", result.ResumeHighlights)
	}
}

func TestAnalyzeProfileCapstoneFailureIsFatal(t *testing.T) {
	wantErr := errors.New("provider down")
	gemini := &fakeGemini{
		errBySchema: map[*genai.Schema]error{
			analysisResultSchema:   wantErr,
			resumeHighlightsSchema: errors.New("boom"),
		},
	}
	uc := NewAnalysisUsecase(gemini, &fakeGithub{}, testPipelineConfig(), "m")

	result, err := uc.AnalyzeProfile(context.Background(), []byte("pdf"), "", "", "")
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want wrapped provider error", err)
	}
	if result != nil {
		t.Errorf("result = %+v, want nil on capstone failure", result)
	}
}

func TestAnalyzeProfileRejectsIncompleteCapstone(t *testing.T) {
	gemini := &fakeGemini{
		bySchema: map[*genai.Schema]string{
			analysisResultSchema:   `{"overall_scores": {}}`,
			resumeHighlightsSchema: highlightsJSON(),
		},
	}
	uc := NewAnalysisUsecase(gemini, &fakeGithub{}, testPipelineConfig(), "m")

	result, err := uc.AnalyzeProfile(context.Background(), []byte("pdf"), "", "", "")
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("err = %v, want ErrInvalidResponse", err)
	}
	if result != nil {
		t.Errorf("result = %+v, want nil for incomplete response", result)
	}
}

func TestBuildRepoDigest(t *testing.T) {
	if got := buildRepoDigest(nil); got != noRepositoriesSentinel {
		t.Errorf("empty digest = %q, want sentinel", got)
	}

	projects := []model.GithubProject{
		{Name: "alpha", Summary: "Service: serves"},
		{Name: "beta", Summary: "Library: helps"},
	}
	want := "REPO: alpha\nSUMMARY: Service: serves\n\nREPO: beta\nSUMMARY: Library: helps"
	if got := buildRepoDigest(projects); got != want {
		t.Errorf("digest = %q, want %q", got, want)
	}
}

func TestValidateRequired(t *testing.T) {
	fields := []string{"a", "b"}

	if err := validateRequired(`{"a": 1, "b": null}`, fields); err != nil {
		t.Errorf("unexpected error for present fields: %v", err)
	}
	if err := validateRequired(`{"a": 1}`, fields); !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("missing field err = %v, want ErrInvalidResponse", err)
	}
	if err := validateRequired(`not json`, fields); !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("invalid json err = %v, want ErrInvalidResponse", err)
	}
}
