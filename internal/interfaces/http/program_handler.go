package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/revendapp/revenda-api/internal/application/dto"
	"github.com/revendapp/revenda-api/internal/application/usecase"
)

// ProgramHandler trata as requisições HTTP de Program (protegido).
type ProgramHandler struct {
	uc *usecase.ProgramUseCase
}

// NewProgramHandler constrói o handler.
func NewProgramHandler(uc *usecase.ProgramUseCase) *ProgramHandler {
	return &ProgramHandler{uc: uc}
}

// Create godoc
// @Summary      Criar programa de pontos
// @Tags         programs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProgramRequest  true  "Dados do programa"
// @Success      201   {object}  dto.ProgramResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/programs [post]
func (h *ProgramHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProgramRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name é obrigatório"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter programa por ID
// @Tags         programs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do programa"
// @Success      200  {object}  dto.ProgramResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/programs/{id} [get]
func (h *ProgramHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "programa não encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar programas
// @Tags         programs
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ProgramListResponse
// @Router       /api/programs [get]
func (h *ProgramHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar programa
// @Tags         programs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do programa"
// @Param        body  body  dto.UpdateProgramRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.ProgramResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/programs/{id} [put]
func (h *ProgramHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.UpdateProgramRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "programa não encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir programa
// @Tags         programs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do programa"
// @Success      204  "sem conteúdo"
// @Router       /api/programs/{id} [delete]
func (h *ProgramHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
