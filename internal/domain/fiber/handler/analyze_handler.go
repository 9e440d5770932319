package handler

import (
	"io"
	"time"

	"github.com/careercompassai/backend/internal/middleware"
	"github.com/careercompassai/backend/internal/usecase"
	"github.com/careercompassai/backend/internal/util"
	"github.com/gofiber/fiber/v2"
)

const maxResumeSize = 10 * 1024 * 1024

type AnalyzeHandler struct {
	uc *usecase.AnalysisUsecase
}

func NewAnalyzeHandler(uc *usecase.AnalysisUsecase) *AnalyzeHandler {
	return &AnalyzeHandler{uc: uc}
}

func (h *AnalyzeHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/analyze-profile", middleware.RateLimiter(2, 1*time.Minute), h.AnalyzeProfile)
}

// AnalyzeProfile takes multipart form data: a resume file (required) plus
// optional jd_text and github_links fields. The analysis runs synchronously;
// one request can take a couple of minutes when repositories are attached.
func (h *AnalyzeHandler) AnalyzeProfile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume file is required",
		}, err)
	}
	if fileHeader.Size > maxResumeSize {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume file is too large (max 10MB)",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot open resume file",
		}, err)
	}
	defer file.Close()

	resume, err := io.ReadAll(file)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot read resume file",
		}, err)
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	jdText := c.FormValue("jd_text")
	githubLinks := c.FormValue("github_links")

	result, err := h.uc.AnalyzeProfile(c.Context(), resume, mimeType, jdText, githubLinks)
	if err != nil {
		// The raw error may quote provider responses; keep the client copy
		// generic and surface detail through the dev channel only.
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "analysis failed, verify inputs and credentials",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success analyze profile",
		Data:    result,
	})
}
