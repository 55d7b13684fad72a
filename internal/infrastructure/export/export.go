// Package export genera archivos CSV y XLSX para los listados de inventario
// y de solicitudes.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/StearCodeK/MajoTerminalo/internal/domain/entity"
)

// InventoryHeaders columnas del exporte de inventario.
var InventoryHeaders = []string{"Código", "Nombre", "Marca", "Categoría", "Ubicación", "Stock", "Estado"}

// RequestHeaders columnas del exporte de solicitudes.
var RequestHeaders = []string{"Fecha", "Referencia", "Departamento", "Solicitante", "Entrega", "Ítems"}

// InventoryRows convierte filas de inventario (con estado ya derivado) a celdas.
func InventoryRows(items []*entity.InventoryItem) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.Code, item.Name, item.BrandName, item.CategoryName, item.LocationName,
			strconv.FormatInt(item.Stock, 10), item.Status,
		})
	}
	return rows
}

// RequestRows convierte el listado de solicitudes a celdas.
func RequestRows(requests []*entity.RequestSummary) [][]string {
	rows := make([][]string, 0, len(requests))
	for _, r := range requests {
		rows = append(rows, []string{
			r.CreatedAt.Format("02/01/2006 15:04"), r.Memo, r.DepartmentName,
			r.RequesterName, r.ResponsibleName, strconv.Itoa(r.ItemCount),
		})
	}
	return rows
}

// WriteCSV escribe cabecera y filas como CSV.
func WriteCSV(w io.Writer, headers []string, data [][]string) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("export: escribir cabecera CSV: %w", err)
	}
	for _, row := range data {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("export: escribir fila CSV: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteExcel escribe cabecera y filas como XLSX en una sola hoja.
func WriteExcel(w io.Writer, sheetName string, headers []string, data [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("export: crear hoja: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("export: crear estilo: %w", err)
	}

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		_ = f.SetCellValue(sheetName, cell, header)
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, row := range data {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			_ = f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range headers {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		_ = f.SetColWidth(sheetName, col, col, 18)
	}

	if sheetName != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: escribir XLSX: %w", err)
	}
	return nil
}
