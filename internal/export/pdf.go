package export

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	mutedColor  = &props.Color{Red: 100, Green: 100, Blue: 100}
	headerColor = &props.Color{Red: 33, Green: 37, Blue: 41}
	altRowColor = &props.Color{Red: 248, Green: 249, Blue: 250}
)

// GeneratePDF renders the document as an A4 PDF and returns the raw bytes
func GeneratePDF(data *Data) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, data)
	addParties(m, data)
	addLineItems(m, data)
	addTotals(m, data)
	addNotes(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s PDF: %w", data.Number, err)
	}
	return doc.GetBytes(), nil
}

func addHeader(m core.Maroto, data *Data) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(text.New(data.Company.Name, props.Text{
				Size:  14,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
			col.New(6).Add(text.New(data.Title, props.Text{
				Size:  14,
				Style: fontstyle.Bold,
				Align: align.Right,
				Color: headerColor,
			})),
		),
	)

	company := data.Company.Address
	if data.Company.Email != "" {
		company = fmt.Sprintf("%s | %s", company, data.Company.Email)
	}
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(text.New(company, props.Text{
				Size:  8,
				Align: align.Left,
				Color: mutedColor,
			})),
			col.New(6).Add(text.New(fmt.Sprintf("No: %s", data.Number), props.Text{
				Size:  10,
				Style: fontstyle.Bold,
				Align: align.Right,
			})),
		),
	)
	m.AddRows(row.New(3))
}

func addParties(m core.Maroto, data *Data) {
	label := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Left, Color: mutedColor}
	rightLabel := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Right, Color: mutedColor}
	rightValue := props.Text{Size: 8, Align: align.Right}

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New(data.CounterpartyRole, label)),
			col.New(3).Add(text.New("Issue Date:", rightLabel)),
			col.New(3).Add(text.New(data.IssueDate, rightValue)),
		),
		row.New(7).Add(
			col.New(6).Add(text.New(data.CounterpartyName, props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
			col.New(3).Add(text.New(data.DueDateLabel+":", rightLabel)),
			col.New(3).Add(text.New(data.DueDate, rightValue)),
		),
		row.New(7).Add(
			col.New(6),
			col.New(3).Add(text.New("Status:", rightLabel)),
			col.New(3).Add(text.New(data.Status, rightValue)),
		),
	)
	m.AddRows(row.New(3))
}

func addLineItems(m core.Maroto, data *Data) {
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := &props.Cell{BackgroundColor: headerColor}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(headerCell),
			col.New(6).Add(text.New("Description", headerTextLeft)).WithStyle(headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Unit Price", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New(fmt.Sprintf("Amount (%s)", data.Currency), headerText)).WithStyle(headerCell),
		),
	)

	for i, line := range data.Lines {
		center := props.Text{Size: 7, Align: align.Center}
		left := props.Text{Size: 7, Align: align.Left}
		right := props.Text{Size: 7, Align: align.Right}

		description := line.Description
		height := 7.0
		if line.Services != "" {
			description = fmt.Sprintf("%s\n+ %s", line.Description, line.Services)
			height = 11
		}

		cols := []core.Col{
			col.New(1).Add(text.New(fmt.Sprintf("%d", line.Index), center)),
			col.New(6).Add(text.New(description, left)),
			col.New(1).Add(text.New(fmt.Sprintf("%d", line.Quantity), right)),
			col.New(2).Add(text.New(line.UnitPrice, right)),
			col.New(2).Add(text.New(line.Amount, right)),
		}
		if i%2 == 1 {
			for j := range cols {
				cols[j] = cols[j].WithStyle(&props.Cell{BackgroundColor: altRowColor})
			}
		}
		m.AddRows(row.New(height).Add(cols...))
	}

	if len(data.Lines) == 0 {
		m.AddRows(row.New(7).Add(
			col.New(12).Add(text.New("No line items", props.Text{Size: 7, Align: align.Center, Color: mutedColor})),
		))
	}
	m.AddRows(row.New(2))
}

func addTotals(m core.Maroto, data *Data) {
	label := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}
	value := props.Text{Size: 8, Align: align.Right}
	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245}}

	addTotalRow := func(name, amount string, bold bool) {
		v := value
		if bold {
			v.Style = fontstyle.Bold
		}
		m.AddRows(row.New(6).Add(
			col.New(8),
			col.New(2).Add(text.New(name, label)).WithStyle(summaryCell),
			col.New(2).Add(text.New(amount, v)).WithStyle(summaryCell),
		))
	}

	addTotalRow("Subtotal", data.Subtotal, false)
	addTotalRow(data.TaxLabel, data.TaxAmount, false)
	addTotalRow("Total", data.Total, true)
	m.AddRows(row.New(4))
}

func addNotes(m core.Maroto, data *Data) {
	if data.Notes == "" {
		return
	}
	m.AddRows(
		row.New(6).Add(col.New(12).Add(text.New("NOTES", props.Text{
			Size:  7,
			Style: fontstyle.Bold,
			Align: align.Left,
			Color: mutedColor,
		}))),
		row.New(12).Add(col.New(12).Add(text.New(data.Notes, props.Text{Size: 8, Align: align.Left}))),
	)
}
