package controller

import (
	"ai-proposal-be/internal/dto"
	"ai-proposal-be/internal/pkg/serverutils"
	"ai-proposal-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProposalController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
	SubmitAnswer(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Review(ctx *fiber.Ctx) error
	Confirm(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type proposalController struct {
	service service.IProposalService
}

func NewProposalController(service service.IProposalService) IProposalController {
	return &proposalController{service: service}
}

func (c *proposalController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/proposal/v1")
	h.Post("session", c.CreateSession)
	h.Get("session/:id", c.Show)
	h.Post("session/:id/generate", c.Generate)
	h.Post("session/:id/answer", c.SubmitAnswer)
	h.Get("session/:id/review", c.Review)
	h.Post("session/:id/confirm", c.Confirm)
	h.Delete("session/:id", c.Delete)
}

func (c *proposalController) CreateSession(ctx *fiber.Ctx) error {
	res, err := c.service.CreateSession(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *proposalController) Generate(ctx *fiber.Ctx) error {
	id, err := sessionID(ctx)
	if err != nil {
		return err
	}

	var req dto.GenerateProposalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Generate(ctx.Context(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate proposal", res))
}

func (c *proposalController) SubmitAnswer(ctx *fiber.Ctx) error {
	id, err := sessionID(ctx)
	if err != nil {
		return err
	}

	var req dto.SubmitAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.SubmitAnswer(ctx.Context(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit answer", res))
}

func (c *proposalController) Show(ctx *fiber.Ctx) error {
	id, err := sessionID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetConversation(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *proposalController) Review(ctx *fiber.Ctx) error {
	id, err := sessionID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetReviewDetails(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get review details", res))
}

func (c *proposalController) Confirm(ctx *fiber.Ctx) error {
	id, err := sessionID(ctx)
	if err != nil {
		return err
	}

	var req dto.ConfirmDetailsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.ConfirmDetails(ctx.Context(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success confirm details", res))
}

func (c *proposalController) Delete(ctx *fiber.Ctx) error {
	id, err := sessionID(ctx)
	if err != nil {
		return err
	}

	if err := c.service.DeleteSession(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete session", nil))
}

func sessionID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}
	return id, nil
}
