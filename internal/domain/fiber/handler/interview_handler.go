package handler

import (
	"encoding/base64"
	"io"
	"time"

	"github.com/careercompassai/backend/internal/dto"
	"github.com/careercompassai/backend/internal/middleware"
	"github.com/careercompassai/backend/internal/usecase"
	"github.com/careercompassai/backend/internal/util"
	"github.com/gofiber/fiber/v2"
)

type InterviewHandler struct {
	uc *usecase.InterviewUsecase
}

func NewInterviewHandler(uc *usecase.InterviewUsecase) *InterviewHandler {
	return &InterviewHandler{uc: uc}
}

func (h *InterviewHandler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/interview", middleware.RateLimiter(20, 1*time.Minute))
	group.Post("/topics", h.Topics)
	group.Post("/questions", h.Question)
	group.Post("/evaluate", h.Evaluate)
	group.Post("/transcribe", h.Transcribe)
	group.Post("/speech", h.Speech)
}

func (h *InterviewHandler) Topics(c *fiber.Ctx) error {
	var req dto.TopicsRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	topics := h.uc.GenerateTopics(c.Context(), req.Role)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success generate topics",
		Data:    fiber.Map{"topics": topics},
	})
}

func (h *InterviewHandler) Question(c *fiber.Ctx) error {
	var req dto.QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	question := h.uc.GenerateQuestion(c.Context(), req.Role, req.Topic)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success generate question",
		Data:    question,
	})
}

func (h *InterviewHandler) Evaluate(c *fiber.Ctx) error {
	var req dto.EvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	evaluation := h.uc.EvaluateAnswer(c.Context(), req.QuestionText, req.Transcript)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success evaluate answer",
		Data:    evaluation,
	})
}

// Transcribe accepts the recorded answer either as a multipart "audio" file
// or as a base64 "audio_b64" form field.
func (h *InterviewHandler) Transcribe(c *fiber.Ctx) error {
	audio, mimeType, err := h.readAudio(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "audio payload is required",
		}, err)
	}

	text := h.uc.TranscribeAudio(c.Context(), audio, mimeType)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success transcribe audio",
		Data:    fiber.Map{"transcript": text},
	})
}

func (h *InterviewHandler) Speech(c *fiber.Ctx) error {
	var req dto.SpeechRequest
	if err := c.BodyParser(&req); err != nil || req.Text == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "text is required",
		}, err)
	}

	// Empty audio_base64 tells the client to fall back to on-device synthesis.
	audio := h.uc.SynthesizeSpeech(c.Context(), req.Text)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success synthesize speech",
		Data:    fiber.Map{"audio_base64": audio},
	})
}

func (h *InterviewHandler) readAudio(c *fiber.Ctx) ([]byte, string, error) {
	if fileHeader, err := c.FormFile("audio"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, "", err
		}
		defer file.Close()
		audio, err := io.ReadAll(file)
		if err != nil {
			return nil, "", err
		}
		mimeType := fileHeader.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = "audio/webm"
		}
		return audio, mimeType, nil
	}

	encoded := c.FormValue("audio_b64")
	if encoded == "" {
		return nil, "", fiber.ErrBadRequest
	}
	audio, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", err
	}
	mimeType := c.FormValue("mime_type")
	if mimeType == "" {
		mimeType = "audio/webm"
	}
	return audio, mimeType, nil
}
