package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/StearCodeK/MajoTerminalo/internal/domain/entity"
)

func sampleItems() []*entity.InventoryItem {
	return []*entity.InventoryItem{
		{Code: "RES-001", Name: "Resma carta", BrandName: "Genérica", CategoryName: "Papelería",
			LocationName: "Estante A", Stock: 12, Status: "disponible"},
		{Code: "TON-004", Name: "Tóner negro", Stock: 0, Status: "agotado"},
	}
}

func TestWriteCSV_Inventario(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, InventoryHeaders, InventoryRows(sampleItems())))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Código")
	assert.Contains(t, lines[1], "RES-001")
	assert.Contains(t, lines[1], "disponible")
	assert.Contains(t, lines[2], "agotado")
}

func TestWriteExcel_Inventario(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExcel(&buf, "Inventario", InventoryHeaders, InventoryRows(sampleItems())))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Inventario", "A2")
	require.NoError(t, err)
	assert.Equal(t, "RES-001", got)

	got, err = f.GetCellValue("Inventario", "G3")
	require.NoError(t, err)
	assert.Equal(t, "agotado", got)
}

func TestRequestRows(t *testing.T) {
	created := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	rows := RequestRows([]*entity.RequestSummary{{
		CreatedAt:      created,
		Memo:           "Memo-0042",
		DepartmentName: "Compras",
		RequesterName:  "Ana Pérez",
		ItemCount:      3,
	}})
	require.Len(t, rows, 1)
	assert.Equal(t, "14/03/2025 10:30", rows[0][0])
	assert.Equal(t, "Memo-0042", rows[0][1])
	assert.Equal(t, "3", rows[0][5])
}
