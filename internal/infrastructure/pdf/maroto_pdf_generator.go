// Package pdf implementa la representación imprimible de una factura de la
// agencia con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Agencia + "FACTURA"  │  Número + Fecha de emisión  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre / Empresa     │  Vencimiento + Estado       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | Tarifa | Importe                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                       │
//	│  NOTAS                                                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/tu-usuario/agencia-ops/internal/application/billing"
	"github.com/tu-usuario/agencia-ops/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ billing.PDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	agencyName string
}

// NewMarotoPDFGenerator construye el generador con el nombre de la agencia
// que encabeza el documento.
func NewMarotoPDFGenerator(agencyName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{agencyName: agencyName}
}

// Generate genera el PDF y devuelve sus bytes. Los montos se formatean a dos
// decimales solo aquí; los valores de la factura conservan su precisión.
func (g *MarotoPDFGenerator) Generate(
	invoice *entity.Invoice,
	items []*entity.InvoiceItem,
	client *entity.Client,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+invoice.InvoiceNumber, true).
		WithAuthor(g.agencyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(invoice, client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, it := range items {
		m.AddRows(itemRow(it))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(invoice))

	if invoice.Notes != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(notesRow(invoice))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: agencia + título (izq) y número + fecha de emisión (der).
func (g *MarotoPDFGenerator) headerRow(invoice *entity.Invoice) core.Row {
	fecha := invoice.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.agencyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("FACTURA", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(invoice.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1, Color: colorPrimary,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos del cliente (izq) y vencimiento + estado (der).
func clientRow(invoice *entity.Invoice, client *entity.Client) core.Row {
	name, detail := "", ""
	if client != nil {
		name = client.Name
		detail = client.Company
		if detail == "" {
			detail = client.Email
		}
	}
	return row.New(16).Add(
		col.New(7).Add(
			text.New("CLIENTE", props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 5}),
			text.New(detail, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Vencimiento: "+invoice.DueDate, props.Text{
				Size: 9, Align: align.Right, Top: 5,
			}),
			text.New("Estado: "+statusLabel(invoice.Status), props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 1.5}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 1.5, Align: align.Right}
	return row.New(7).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		col.New(1).Add(text.New("Cant", header)),
		col.New(7).Add(text.New("Descripción", header)),
		col.New(2).Add(text.New("Tarifa", headerRight)),
		col.New(2).Add(text.New("Importe", headerRight)),
	)
}

func itemRow(it *entity.InvoiceItem) core.Row {
	cell := props.Text{Size: 8, Top: 1.5}
	cellRight := props.Text{Size: 8, Top: 1.5, Align: align.Right}
	return row.New(6).Add(
		col.New(1).Add(text.New(fmt.Sprintf("%d", it.Quantity), cell)),
		col.New(7).Add(text.New(it.Description, cell)),
		col.New(2).Add(text.New("$"+it.Rate.StringFixed(2), cellRight)),
		col.New(2).Add(text.New("$"+it.Amount.StringFixed(2), cellRight)),
	)
}

func totalRow(invoice *entity.Invoice) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
		})),
		col.New(2).Add(text.New("$"+invoice.Amount.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
	)
}

func notesRow(invoice *entity.Invoice) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("NOTAS", props.Text{Size: 7, Color: colorGray}),
			text.New(invoice.Notes, props.Text{Size: 8, Top: 4}),
		),
	)
}

func statusLabel(status string) string {
	switch status {
	case entity.InvoiceStatusPaid:
		return "Pagada"
	case entity.InvoiceStatusOverdue:
		return "Vencida"
	default:
		return "Pendiente"
	}
}
