package handler

import (
	"time"

	"github.com/careercompassai/backend/internal/dto"
	"github.com/careercompassai/backend/internal/middleware"
	"github.com/careercompassai/backend/internal/model"
	"github.com/careercompassai/backend/internal/usecase"
	"github.com/careercompassai/backend/internal/util"
	"github.com/gofiber/fiber/v2"
)

type PortfolioHandler struct {
	uc *usecase.PortfolioUsecase
}

func NewPortfolioHandler(uc *usecase.PortfolioUsecase) *PortfolioHandler {
	return &PortfolioHandler{uc: uc}
}

func (h *PortfolioHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/portfolio/generate", middleware.RateLimiter(5, 1*time.Minute), h.Generate)
	app.Get("/portfolio/result/:id", h.Result)
}

func (h *PortfolioHandler) Generate(c *fiber.Ctx) error {
	var req model.PortfolioRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	task := h.uc.Submit(&req)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusAccepted,
		Message: "Success submit portfolio generation",
		Data:    fiber.Map{"id": task.ID, "status": task.Status},
	})
}

func (h *PortfolioHandler) Result(c *fiber.Ctx) error {
	id := c.Params("id")
	task, err := h.uc.GetResult(id)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "portfolio task not found",
		}, err)
	}

	data := dto.PortfolioTaskDTO{
		ID:          task.ID,
		Status:      task.Status,
		HTMLContent: task.HTMLContent,
		Error:       task.Error,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get portfolio result",
		Data:    data,
	})
}
