// Package pdf implementa la generación de la nota de entrega de una
// solicitud de salida.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nota de Entrega  │  Referencia + Fecha             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DEPARTAMENTO / SOLICITANTE / RESPONSABLE                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Código | Descripción                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FIRMAS: Entrega / Recibe                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/StearCodeK/MajoTerminalo/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// DeliveryNoteGenerator genera la nota de entrega en PDF usando Maroto v2.
type DeliveryNoteGenerator struct{}

// NewDeliveryNoteGenerator construye el generador.
func NewDeliveryNoteGenerator() *DeliveryNoteGenerator { return &DeliveryNoteGenerator{} }

// Generate genera el PDF de la nota de entrega y devuelve sus bytes.
func (g *DeliveryNoteGenerator) Generate(
	_ context.Context,
	request *entity.RequestSummary,
	items []*entity.RequestItemDetail,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Nota de Entrega", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(request))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(request))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(signatureRow(request))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar nota de entrega: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y referencia + fecha (der).
func headerRow(request *entity.RequestSummary) core.Row {
	fecha := request.CreatedAt.Format("02/01/2006 15:04")
	return row.New(16).Add(
		col.New(7).Add(
			text.New("NOTA DE ENTREGA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Control de inventario institucional", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Ref: "+request.Memo, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// partiesRow: departamento, solicitante y responsable de la entrega.
func partiesRow(request *entity.RequestSummary) core.Row {
	responsible := request.ResponsibleName
	if responsible == "" {
		responsible = "—"
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("DATOS DE LA SOLICITUD", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Departamento: %s   |   Solicitante: %s   |   Entrega: %s",
				request.DepartmentName, request.RequesterName, responsible,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Código", 3, align.Left),
		h("Descripción", 7, align.Left),
	)
}

// tableItemRows: una fila por línea, en el orden del carrito.
func tableItemRows(items []*entity.RequestItemDetail) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, item := range items {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", item.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				item.ProductCode,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(7).Add(text.New(
				item.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

// signatureRow: líneas de firma para quien entrega y quien recibe.
func signatureRow(request *entity.RequestSummary) core.Row {
	sig := func(role, name string) core.Col {
		return col.New(6).Add(
			text.New("_______________________________", props.Text{
				Size: 9, Align: align.Center, Top: 14,
			}),
			text.New(fmt.Sprintf("%s: %s", role, name), props.Text{
				Size: 8, Align: align.Center, Top: 20, Color: colorGray,
			}),
		)
	}
	responsible := request.ResponsibleName
	if responsible == "" {
		responsible = "—"
	}
	return row.New(26).Add(
		sig("Entrega", responsible),
		sig("Recibe", request.RequesterName),
	)
}
