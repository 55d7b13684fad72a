package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/StearCodeK/MajoTerminalo/internal/application/delivery"
	"github.com/StearCodeK/MajoTerminalo/internal/application/dto"
	"github.com/StearCodeK/MajoTerminalo/internal/domain"
	"github.com/StearCodeK/MajoTerminalo/internal/domain/repository"
	"github.com/StearCodeK/MajoTerminalo/internal/infrastructure/pdf"
)

// DeliveryHandler maneja el registro y consulta de solicitudes de salida.
type DeliveryHandler struct {
	uc           *delivery.RegisterDeliveryUseCase
	deliveryRepo repository.DeliveryRepository
	noteGen      *pdf.DeliveryNoteGenerator
}

// NewDeliveryHandler construye el handler.
func NewDeliveryHandler(
	uc *delivery.RegisterDeliveryUseCase,
	deliveryRepo repository.DeliveryRepository,
	noteGen *pdf.DeliveryNoteGenerator,
) *DeliveryHandler {
	return &DeliveryHandler{uc: uc, deliveryRepo: deliveryRepo, noteGen: noteGen}
}

func mapDeliveryError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "departamento, solicitante y referencia son requeridos; cantidades > 0"})
	case domain.ErrSolicitudVacia:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_REQUEST", Message: "la solicitud no tiene líneas"})
	case domain.ErrStockInsuficiente:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para una de las líneas"})
	case domain.ErrRelacionInactiva:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INACTIVE_RELATION", Message: err.Error()})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case domain.ErrUnauthorized:
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Register godoc
// @Summary      Registrar una entrega (todo o nada)
// @Tags         deliveries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterDeliveryRequest  true  "Cabecera y líneas"
// @Success      201   {object}  dto.DeliveryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/deliveries [post]
func (h *DeliveryHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterDelivery(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return mapDeliveryError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar solicitudes de salida
// @Tags         deliveries
// @Security     Bearer
// @Produce      json
// @Param        search      query  string  false  "Busca en referencia y solicitante"
// @Param        department  query  string  false  "ID de departamento"
// @Param        from        query  string  false  "Desde (RFC3339)"
// @Param        to          query  string  false  "Hasta (RFC3339)"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200         {object}  dto.RequestListResponse
// @Router       /api/deliveries [get]
func (h *DeliveryHandler) List(c *fiber.Ctx) error {
	filter, err := requestFilterFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from/to deben ser RFC3339"})
	}
	out, err := h.uc.ListRequests(filter)
	if err != nil {
		return mapDeliveryError(c, err)
	}
	return c.JSON(out)
}

// GetDetail godoc
// @Summary      Detalle de una solicitud
// @Tags         deliveries
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.RequestDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deliveries/{id} [get]
func (h *DeliveryHandler) GetDetail(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetRequestDetail(id)
	if err != nil {
		return mapDeliveryError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
	}
	return c.JSON(out)
}

// Note godoc
// @Summary      Nota de entrega en PDF
// @Tags         deliveries
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deliveries/{id}/note [get]
func (h *DeliveryHandler) Note(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	request, err := h.deliveryRepo.GetRequest(id)
	if err != nil {
		return mapDeliveryError(c, err)
	}
	if request == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
	}
	items, err := h.deliveryRepo.ListItems(id)
	if err != nil {
		return mapDeliveryError(c, err)
	}
	doc, err := h.noteGen.Generate(c.UserContext(), request, items)
	if err != nil {
		return mapDeliveryError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=nota-entrega-%s.pdf", id))
	return c.Send(doc)
}

// requestFilterFromQuery arma el filtro de solicitudes desde query params.
func requestFilterFromQuery(c *fiber.Ctx) (repository.RequestFilter, error) {
	from, err := parseTimeQuery(c, "from")
	if err != nil {
		return repository.RequestFilter{}, err
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		return repository.RequestFilter{}, err
	}
	return repository.RequestFilter{
		Search:       c.Query("search"),
		DepartmentID: c.Query("department"),
		From:         from,
		To:           to,
		Limit:        c.QueryInt("limit", 20),
		Offset:       c.QueryInt("offset", 0),
	}, nil
}
