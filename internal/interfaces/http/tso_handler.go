package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/oticavisao/otica-api/internal/application/dto"
	"github.com/oticavisao/otica-api/internal/application/usecase"
	"github.com/oticavisao/otica-api/internal/domain"
)

// TSOHandler trata receitas oftálmicas (TSO): registro, consulta e PDF.
type TSOHandler struct {
	uc *usecase.TSOUseCase
}

// NewTSOHandler constrói o handler.
func NewTSOHandler(uc *usecase.TSOUseCase) *TSOHandler {
	return &TSOHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar receita oftálmica
// @Tags         tso
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTSORequest  true  "client_id e medidas OD/OE"
// @Success      201   {object}  dto.TSOResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tso [post]
func (h *TSOHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateTSORequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	tso, err := h.uc.Create(userID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "client_id e medidas válidas (eixo 0–180) são obrigatórios"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(tso)
}

// GetByID godoc
// @Summary      Obter receita por ID
// @Tags         tso
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da receita"
// @Success      200  {object}  dto.TSOResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tso/{id} [get]
func (h *TSOHandler) GetByID(c *fiber.Ctx) error {
	tso, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if tso == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "receita não encontrada"})
	}
	return c.JSON(tso)
}

// ListByClient godoc
// @Summary      Listar receitas de um cliente
// @Tags         tso
// @Security     Bearer
// @Produce      json
// @Param        client_id  query  string  true   "ID do cliente"
// @Param        limit      query  int     false  "página (máx. 100)"
// @Param        offset     query  int     false  "deslocamento"
// @Success      200  {object}  dto.TSOListResponse
// @Router       /api/tso [get]
func (h *TSOHandler) ListByClient(c *fiber.Ctx) error {
	clientID := c.Query("client_id")
	if clientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "client_id é obrigatório"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginação inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.ListByClient(clientID, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetPDF godoc
// @Summary      Baixar o formulário imprimível da receita (PDF A4)
// @Tags         tso
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID da receita"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tso/{id}/pdf [get]
func (h *TSOHandler) GetPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.GeneratePDF(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "receita não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="tso.pdf"`)
	return c.Send(pdfBytes)
}
