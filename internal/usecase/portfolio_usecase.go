package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/careercompassai/backend/internal/config"
	"github.com/careercompassai/backend/internal/model"
	"github.com/careercompassai/backend/internal/repository"
	"github.com/careercompassai/backend/internal/service"
	"github.com/careercompassai/backend/internal/util"
	"github.com/google/uuid"
	"google.golang.org/genai"
)

const maxPortfolioProjects = 4

// PortfolioUsecase generates standalone portfolio pages in the background.
// Submit returns a task handle immediately; the HTTP layer polls for the
// result by id.
type PortfolioUsecase struct {
	gemini service.GeminiServiceInterface
	tasks  repository.PortfolioTaskRepositoryInterface
	cfg    *config.PipelineConfig
	model  string
}

func NewPortfolioUsecase(gemini service.GeminiServiceInterface, tasks repository.PortfolioTaskRepositoryInterface, pipeCfg *config.PipelineConfig, modelName string) *PortfolioUsecase {
	return &PortfolioUsecase{gemini: gemini, tasks: tasks, cfg: pipeCfg, model: modelName}
}

// Submit registers a generation task and starts it on a fresh goroutine. The
// goroutine carries its own context so it outlives the submitting request.
// The returned handle is a snapshot taken before the worker starts; only the
// stored record, read through GetResult, reflects progress.
func (uc *PortfolioUsecase) Submit(req *model.PortfolioRequest) *model.PortfolioTask {
	now := time.Now()
	task := &model.PortfolioTask{
		ID:        uuid.New(),
		Status:    model.TaskStatusProcessing,
		CreatedAt: now,
		UpdatedAt: now,
		Done:      make(chan struct{}),
	}
	uc.tasks.Create(task)
	snapshot := *task

	go func() {
		defer close(task.Done)
		html, err := uc.generate(context.Background(), req)
		uc.tasks.Update(task.ID, func(t *model.PortfolioTask) {
			if err != nil {
				t.Status = model.TaskStatusFailed
				t.Error = err.Error()
				t.HTMLContent = portfolioErrorHTML
				return
			}
			t.Status = model.TaskStatusCompleted
			t.HTMLContent = html
		})
	}()
	return &snapshot
}

// Generate produces the portfolio HTML synchronously. It never fails: any
// error along the way yields the retriable error page instead.
func (uc *PortfolioUsecase) Generate(ctx context.Context, req *model.PortfolioRequest) string {
	html, err := uc.generate(ctx, req)
	if err != nil {
		return portfolioErrorHTML
	}
	return html
}

func (uc *PortfolioUsecase) generate(ctx context.Context, req *model.PortfolioRequest) (string, error) {
	prefsJSON, err := json.Marshal(req.Preferences)
	if err != nil {
		log.Printf("Portfolio preferences marshal failed: %v", err)
		return "", fmt.Errorf("marshal preferences: %w", err)
	}
	profileJSON, err := json.Marshal(buildCandidateProfile(&req.AnalysisResult, &req.Preferences))
	if err != nil {
		log.Printf("Portfolio profile marshal failed: %v", err)
		return "", fmt.Errorf("marshal candidate profile: %w", err)
	}

	prompt := fmt.Sprintf(portfolioPrompt, prefsJSON, profileJSON, safeNavScript)

	// No response schema here: the output is a raw HTML document, not JSON.
	resp, err := uc.gemini.GenerateWithRetry(ctx, uc.model, genai.Text(prompt), nil, uc.cfg.MaxRetries)
	if err != nil {
		log.Printf("Portfolio generation failed: %v", err)
		return "", err
	}

	html := util.StripCodeFences(resp.Text())
	if !strings.Contains(html, "<html") {
		log.Printf("Portfolio response is not an HTML document")
		return "", fmt.Errorf("%w: response is not an HTML document", ErrInvalidResponse)
	}
	return html, nil
}

func (uc *PortfolioUsecase) GetResult(id string) (*model.PortfolioTask, error) {
	taskID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid task id %q", id)
	}
	return uc.tasks.FindByID(taskID)
}

// candidateProfile is the narrowed view of the analysis result handed to the
// portfolio prompt. The full result is far too large and mostly irrelevant to
// page layout, so only presentation-worthy fields survive.
type candidateProfile struct {
	Name         string             `json:"name"`
	Headline     string             `json:"headline"`
	Summary      string             `json:"summary"`
	Strengths    []string           `json:"strengths"`
	TopAreas     []profileArea      `json:"top_competency_areas"`
	Projects     []profileProject   `json:"projects"`
	ContactEmail string             `json:"contact_email,omitempty"`
	ContactPhone string             `json:"contact_phone,omitempty"`
	CustomLinks  []model.CustomLink `json:"custom_links,omitempty"`
}

type profileArea struct {
	Area   string   `json:"area"`
	Skills []string `json:"skills"`
}

type profileProject struct {
	Name      string   `json:"name"`
	Summary   string   `json:"summary"`
	TechStack []string `json:"tech_stack"`
}

func buildCandidateProfile(result *model.AnalysisResult, prefs *model.PortfolioPreferences) *candidateProfile {
	profile := &candidateProfile{
		Name:         result.TextSummaries.CandidateName,
		Headline:     result.TextSummaries.CandidateHeadline,
		Summary:      result.TextSummaries.ProfileSummary,
		Strengths:    result.TextSummaries.Strengths,
		ContactEmail: prefs.ContactEmail,
		ContactPhone: prefs.ContactPhone,
		CustomLinks:  prefs.CustomLinks,
	}
	if profile.Name == "" {
		profile.Name = "The Candidate"
	}
	if profile.Headline == "" && len(result.TextSummaries.SuggestedRoles) > 0 {
		profile.Headline = result.TextSummaries.SuggestedRoles[0]
	}

	for i, area := range result.CompetencyMatrix {
		if i >= 3 {
			break
		}
		pa := profileArea{Area: area.Area}
		for _, skill := range area.Skills {
			pa.Skills = append(pa.Skills, skill.Name)
		}
		profile.TopAreas = append(profile.TopAreas, pa)
	}

	for i, p := range result.GithubProjects {
		if i >= maxPortfolioProjects {
			break
		}
		profile.Projects = append(profile.Projects, profileProject{
			Name:      p.Name,
			Summary:   p.Summary,
			TechStack: p.TechStack,
		})
	}
	if len(profile.Projects) == 0 {
		// The page needs a projects section even without analyzed repos.
		profile.Projects = append(profile.Projects, profileProject{
			Name:    "Selected Work",
			Summary: "Professional work derived from the candidate's experience summary.",
		})
	}
	return profile
}
