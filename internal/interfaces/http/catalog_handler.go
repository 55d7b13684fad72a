package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/StearCodeK/MajoTerminalo/internal/application/dto"
	"github.com/StearCodeK/MajoTerminalo/internal/application/usecase"
	"github.com/StearCodeK/MajoTerminalo/internal/domain"
	"github.com/StearCodeK/MajoTerminalo/internal/domain/entity"
)

// CatalogHandler maneja marcas, categorías y ubicaciones; el path param
// :kind selecciona el catálogo (marcas | categorias | ubicaciones).
type CatalogHandler struct {
	catalogUC    *usecase.CatalogUseCase
	departmentUC *usecase.DepartmentUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(catalogUC *usecase.CatalogUseCase, departmentUC *usecase.DepartmentUseCase) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC, departmentUC: departmentUC}
}

func mapCatalogError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una entrada con ese nombre"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrada no encontrada"})
	case domain.ErrRelacionInactiva:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INACTIVE_RELATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// List godoc
// @Summary      Listar entradas activas de un catálogo
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Param        kind  path  string  true  "marcas | categorias | ubicaciones"
// @Success      200   {array}  dto.CatalogEntryResponse
// @Router       /api/catalogs/{kind} [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	out, err := h.catalogUC.List(entity.CatalogKind(c.Params("kind")))
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agregar entrada a un catálogo
// @Tags         catalogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        kind  path  string  true  "marcas | categorias | ubicaciones"
// @Param        body  body  dto.CreateCatalogEntryRequest  true  "Nombre"
// @Success      201   {object}  dto.CatalogEntryResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/catalogs/{kind} [post]
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCatalogEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.catalogUC.Create(entity.CatalogKind(c.Params("kind")), in)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SetActive godoc
// @Summary      Activar o desactivar una entrada de catálogo
// @Tags         catalogs
// @Security     Bearer
// @Accept       json
// @Param        kind  path  string  true  "marcas | categorias | ubicaciones"
// @Param        id    path  string  true  "ID de la entrada"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalogs/{kind}/{id} [patch]
func (h *CatalogHandler) SetActive(c *fiber.Ctx) error {
	var in struct {
		Active bool `json:"active"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.catalogUC.SetActive(entity.CatalogKind(c.Params("kind")), c.Params("id"), in.Active); err != nil {
		return mapCatalogError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListDepartments godoc
// @Summary      Listar departamentos activos
// @Tags         departments
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DepartmentResponse
// @Router       /api/departments [get]
func (h *CatalogHandler) ListDepartments(c *fiber.Ctx) error {
	out, err := h.departmentUC.ListDepartments()
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.JSON(out)
}

// CreateDepartment godoc
// @Summary      Agregar departamento
// @Tags         departments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDepartmentRequest  true  "Nombre"
// @Success      201   {object}  dto.DepartmentResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/departments [post]
func (h *CatalogHandler) CreateDepartment(c *fiber.Ctx) error {
	var in dto.CreateDepartmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.departmentUC.CreateDepartment(in)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListRequesters godoc
// @Summary      Listar solicitantes
// @Tags         departments
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RequesterResponse
// @Router       /api/requesters [get]
func (h *CatalogHandler) ListRequesters(c *fiber.Ctx) error {
	out, err := h.departmentUC.ListRequesters()
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.JSON(out)
}

// CreateRequester godoc
// @Summary      Registrar solicitante
// @Tags         departments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRequesterRequest  true  "cedula, name, department_id"
// @Success      201   {object}  dto.RequesterResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/requesters [post]
func (h *CatalogHandler) CreateRequester(c *fiber.Ctx) error {
	var in dto.CreateRequesterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.departmentUC.CreateRequester(in)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
