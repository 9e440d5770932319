package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/careercompassai/backend/internal/config"
	"github.com/careercompassai/backend/internal/model"
	"github.com/careercompassai/backend/internal/service"
	"github.com/careercompassai/backend/internal/util"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// ErrInvalidResponse marks a model response that parsed or validated badly.
// It is a distinct failure kind from transport errors even though both land
// in the same fault-tolerance class at each component boundary.
var ErrInvalidResponse = errors.New("model response failed validation")

var ErrResumeRequired = errors.New("resume file is required")

var projectRequiredFields = []string{
	"project_name", "short_description", "project_type", "tech_stack",
	"complexity_rating", "recommended_resume_bullets", "improvement_suggestions",
}

var highlightsRequiredFields = []string{"overall_feedback", "segments", "summary_counts"}

var analysisRequiredFields = []string{
	"overall_scores", "market_analysis", "skill_distribution", "gap_skills",
	"competency_matrix", "jd_breakdown", "company_fit", "roadmap_effort",
	"roadmap_details", "roadmap_timeline", "employability_profile",
	"text_summaries", "github_projects", "assets", "portfolio_template",
}

// AnalysisUsecase runs the multi-stage profile analysis: repository side
// channel, resume-highlights side channel, then the capstone synthesis call.
type AnalysisUsecase struct {
	gemini service.GeminiServiceInterface
	github service.GithubServiceInterface
	cfg    *config.PipelineConfig
	model  string
}

func NewAnalysisUsecase(gemini service.GeminiServiceInterface, github service.GithubServiceInterface, pipeCfg *config.PipelineConfig, modelName string) *AnalysisUsecase {
	return &AnalysisUsecase{gemini: gemini, github: github, cfg: pipeCfg, model: modelName}
}

// AnalyzeProfile is the capstone operation. The resume is mandatory; the job
// description and repository links are optional. Both side channels are
// best-effort: their failures shrink the result but never abort it. A
// capstone failure aborts the whole analysis with no partial result.
func (uc *AnalysisUsecase) AnalyzeProfile(ctx context.Context, resume []byte, mimeType, jdText, githubLinks string) (*model.AnalysisResult, error) {
	if len(resume) == 0 {
		return nil, ErrResumeRequired
	}
	if mimeType == "" {
		mimeType = "application/pdf"
	}

	// Stage 1: repository side channel. Stage 2: resume highlights. The
	// stages run back to back rather than fanned out so the whole pipeline
	// shares one rate-limit budget; each stage's internal concurrency is a
	// config knob.
	projects := uc.AnalyzeRepos(ctx, githubLinks)
	highlights := uc.AnalyzeResumeHighlights(ctx, resume, mimeType)

	jd := strings.TrimSpace(jdText)
	if jd == "" {
		jd = unspecifiedJDSentinel
	}
	prompt := fmt.Sprintf(mainAnalysisPrompt, jd, buildRepoDigest(projects))

	contents := []*genai.Content{genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromBytes(resume, mimeType),
		genai.NewPartFromText(prompt),
	}, genai.RoleUser)}

	genConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   analysisResultSchema,
		Tools:            []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}

	resp, err := uc.gemini.GenerateWithRetry(ctx, uc.model, contents, genConfig, uc.cfg.CapstoneRetries)
	if err != nil {
		return nil, fmt.Errorf("primary analysis call failed: %w", err)
	}

	text := util.StripCodeFences(resp.Text())
	if text == "" {
		return nil, fmt.Errorf("%w: empty response body", ErrInvalidResponse)
	}
	if err := validateRequired(text, analysisRequiredFields); err != nil {
		return nil, err
	}

	var result model.AnalysisResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	// Overlay the side-channel outputs onto the parsed aggregate.
	if len(projects) > 0 {
		result.GithubProjects = projects
	}
	if highlights != nil {
		result.ResumeHighlights = highlights
	}
	return &result, nil
}

// AnalyzeRepos parses free-form repository links, fetches artifact bundles
// for the first few, and analyzes each bundle with the model. Individual
// failures at any step drop that repository and nothing else; output order
// follows input order.
func (uc *AnalysisUsecase) AnalyzeRepos(ctx context.Context, githubLinks string) []model.GithubProject {
	if strings.TrimSpace(githubLinks) == "" {
		return nil
	}
	refs := uc.github.ParseRepoInput(githubLinks)
	if len(refs) == 0 {
		return nil
	}
	if len(refs) > uc.cfg.RepoLimit {
		refs = refs[:uc.cfg.RepoLimit]
	}

	bundles := make([]*model.ArtifactBundle, len(refs))
	fg, fctx := errgroup.WithContext(ctx)
	fg.SetLimit(uc.cfg.FetchConcurrency)
	for i, ref := range refs {
		fg.Go(func() error {
			bundle, err := uc.github.FetchRepoData(fctx, ref.Owner, ref.Repo)
			if err != nil {
				log.Printf("Dropping repo %s/%s: %v", ref.Owner, ref.Repo, err)
				return nil
			}
			bundles[i] = bundle
			return nil
		})
	}
	_ = fg.Wait()

	// One shared limiter paces the model calls regardless of how wide the
	// analysis bound is set.
	limiter := rate.NewLimiter(rate.Every(uc.cfg.PacingInterval), 1)
	analyses := make([]*model.GithubProject, len(bundles))
	ag, actx := errgroup.WithContext(ctx)
	ag.SetLimit(uc.cfg.AnalysisConcurrency)
	for i, bundle := range bundles {
		if bundle == nil {
			continue
		}
		ag.Go(func() error {
			if err := limiter.Wait(actx); err != nil {
				return nil
			}
			project, err := uc.analyzeArtifact(actx, bundle)
			if err != nil {
				log.Printf("Skipping analysis of %s: %v", bundle.RepoName, err)
				return nil
			}
			analyses[i] = project
			return nil
		})
	}
	_ = ag.Wait()

	var projects []model.GithubProject
	for _, p := range analyses {
		if p != nil {
			projects = append(projects, *p)
		}
	}
	return projects
}

func (uc *AnalysisUsecase) analyzeArtifact(ctx context.Context, bundle *model.ArtifactBundle) (*model.GithubProject, error) {
	prompt := fmt.Sprintf(projectAnalysisPrompt, bundle.RepoName, bundle.LanguageSummary, bundle.FilesBundle)

	genConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   projectDeepAnalysisSchema,
	}

	resp, err := uc.gemini.GenerateWithRetry(ctx, uc.model, genai.Text(prompt), genConfig, uc.cfg.MaxRetries)
	if err != nil {
		return nil, err
	}

	text := util.StripCodeFences(resp.Text())
	if text == "" {
		return nil, fmt.Errorf("%w: empty response body", ErrInvalidResponse)
	}
	if err := validateRequired(text, projectRequiredFields); err != nil {
		return nil, err
	}

	var deep model.ProjectDeepAnalysis
	if err := json.Unmarshal([]byte(text), &deep); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return &model.GithubProject{
		Name:                   deep.ProjectName,
		Summary:                fmt.Sprintf("%s: %s", deep.ProjectType, deep.ShortDescription),
		TechStack:              deep.TechStack,
		ComplexityRating:       deep.ComplexityRating,
		ResumeBullets:          deep.RecommendedResumeBullets,
		ImprovementSuggestions: deep.ImprovementSuggestions,
	}, nil
}

// AnalyzeResumeHighlights asks for a segmented, traffic-light-rated critique
// of the resume. Best-effort: any failure returns nil instead of an error so
// the primary pipeline keeps going.
func (uc *AnalysisUsecase) AnalyzeResumeHighlights(ctx context.Context, resume []byte, mimeType string) *model.ResumeHighlights {
	contents := []*genai.Content{genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromBytes(resume, mimeType),
		genai.NewPartFromText(resumeHighlightsPrompt),
	}, genai.RoleUser)}

	genConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   resumeHighlightsSchema,
	}

	resp, err := uc.gemini.GenerateWithRetry(ctx, uc.model, contents, genConfig, uc.cfg.MaxRetries)
	if err != nil {
		log.Printf("Resume highlights call failed: %v", err)
		return nil
	}

	text := util.StripCodeFences(resp.Text())
	if err := validateRequired(text, highlightsRequiredFields); err != nil {
		log.Printf("Resume highlights response rejected: %v", err)
		return nil
	}

	var highlights model.ResumeHighlights
	if err := json.Unmarshal([]byte(text), &highlights); err != nil {
		log.Printf("Resume highlights parse failed: %v", err)
		return nil
	}
	for _, seg := range highlights.Segments {
		switch seg.Rating {
		case model.RatingGreen, model.RatingYellow, model.RatingRed:
		default:
			log.Printf("Resume highlights response rejected: segment %s has rating %q", seg.ID, seg.Rating)
			return nil
		}
	}

	// The model miscounts often enough that the tally is authoritative.
	highlights.Recount()
	return &highlights
}

// buildRepoDigest condenses the per-artifact analyses into the text embedded
// in the capstone prompt.
func buildRepoDigest(projects []model.GithubProject) string {
	if len(projects) == 0 {
		return noRepositoriesSentinel
	}
	lines := make([]string, 0, len(projects))
	for _, p := range projects {
		lines = append(lines, fmt.Sprintf("REPO: %s\nSUMMARY: %s", p.Name, p.Summary))
	}
	return strings.Join(lines, "\n\n")
}

// validateRequired checks that every schema-required field is present in the
// raw response text before unmarshalling into the typed record.
func validateRequired(jsonText string, fields []string) error {
	if !gjson.Valid(jsonText) {
		return fmt.Errorf("%w: response is not valid JSON", ErrInvalidResponse)
	}
	for _, field := range fields {
		if !gjson.Get(jsonText, field).Exists() {
			return fmt.Errorf("%w: missing required field %q", ErrInvalidResponse, field)
		}
	}
	return nil
}
