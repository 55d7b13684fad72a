package http

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/StearCodeK/MajoTerminalo/internal/application/dto"
	"github.com/StearCodeK/MajoTerminalo/internal/application/usecase"
	"github.com/StearCodeK/MajoTerminalo/internal/domain/repository"
	"github.com/StearCodeK/MajoTerminalo/internal/infrastructure/export"
)

// ExportHandler sirve los exportes CSV/XLSX de inventario y solicitudes.
type ExportHandler struct {
	productUC    *usecase.ProductUseCase
	deliveryRepo repository.DeliveryRepository
}

// NewExportHandler construye el handler.
func NewExportHandler(productUC *usecase.ProductUseCase, deliveryRepo repository.DeliveryRepository) *ExportHandler {
	return &ExportHandler{productUC: productUC, deliveryRepo: deliveryRepo}
}

// Inventory godoc
// @Summary      Exportar inventario (CSV o XLSX)
// @Tags         exports
// @Security     Bearer
// @Param        format    query  string  false  "csv | xlsx"  default(csv)
// @Param        search    query  string  false  "Busca en nombre y código"
// @Param        category  query  string  false  "ID de categoría"
// @Param        status    query  string  false  "Filtro por estado derivado"
// @Success      200  {file}  binary
// @Router       /api/exports/inventory [get]
func (h *ExportHandler) Inventory(c *fiber.Ctx) error {
	items, err := h.productUC.ExportItems(c.UserContext(), c.Query("search"), c.Query("category"), c.Query("status"))
	if err != nil {
		return mapProductError(c, err)
	}
	return writeExport(c, "inventario", export.InventoryHeaders, export.InventoryRows(items))
}

// Requests godoc
// @Summary      Exportar listado de solicitudes (CSV o XLSX)
// @Tags         exports
// @Security     Bearer
// @Param        format      query  string  false  "csv | xlsx"  default(csv)
// @Param        search      query  string  false  "Busca en referencia y solicitante"
// @Param        department  query  string  false  "ID de departamento"
// @Param        from        query  string  false  "Desde (RFC3339)"
// @Param        to          query  string  false  "Hasta (RFC3339)"
// @Success      200  {file}  binary
// @Router       /api/exports/requests [get]
func (h *ExportHandler) Requests(c *fiber.Ctx) error {
	filter, err := requestFilterFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from/to deben ser RFC3339"})
	}
	filter.Limit = 10000
	filter.Offset = 0
	requests, err := h.deliveryRepo.ListRequests(filter)
	if err != nil {
		return mapDeliveryError(c, err)
	}
	return writeExport(c, "solicitudes", export.RequestHeaders, export.RequestRows(requests))
}

// writeExport serializa las filas en el formato pedido y arma la descarga.
func writeExport(c *fiber.Ctx, name string, headers []string, rows [][]string) error {
	format := c.Query("format", "csv")
	var buf bytes.Buffer
	switch format {
	case "csv":
		if err := export.WriteCSV(&buf, headers, rows); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s.csv", name))
	case "xlsx":
		if err := export.WriteExcel(&buf, "Datos", headers, rows); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s.xlsx", name))
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "format debe ser csv o xlsx"})
	}
	return c.Send(buf.Bytes())
}
