package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const maxSheetName = 31

// GenerateExcel renders the document as a single-sheet workbook
func GenerateExcel(data *Data) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := data.Number
	if sheetName == "" {
		sheetName = data.Title
	}
	if len(sheetName) > maxSheetName {
		sheetName = sheetName[:maxSheetName]
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F"}
	lastCol := columns[len(columns)-1]
	widths := []float64{6, 36, 40, 8, 18, 18}
	for i, c := range columns {
		if err := f.SetColWidth(sheetName, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	styles, err := newSheetStyles(f)
	if err != nil {
		return nil, err
	}

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(fmt.Sprintf("%s %s", data.Title, data.Number)))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", styles.title)

	meta := [][2]string{
		{"Issuer", data.Company.Name},
		{data.CounterpartyRole, data.CounterpartyName},
		{"Issue Date", data.IssueDate},
		{data.DueDateLabel, data.DueDate},
		{"Status", data.Status},
		{"Currency", data.Currency},
	}
	row := 2
	for _, kv := range meta {
		r := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+r, kv[0])
		f.SetCellStyle(sheetName, "A"+r, "A"+r, styles.label)
		if err := f.MergeCell(sheetName, "B"+r, lastCol+r); err != nil {
			return nil, fmt.Errorf("merge meta row %d: %w", row, err)
		}
		f.SetCellValue(sheetName, "B"+r, sanitizeExcelCell(kv[1]))
		row++
	}

	row++
	headerRow := fmt.Sprintf("%d", row)
	headers := []string{"#", "Description", "Services", "Qty", "Unit Price", "Amount"}
	for i, h := range headers {
		f.SetCellValue(sheetName, columns[i]+headerRow, h)
	}
	f.SetCellStyle(sheetName, "A"+headerRow, lastCol+headerRow, styles.header)
	row++

	for _, line := range data.Lines {
		r := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+r, line.Index)
		f.SetCellValue(sheetName, "B"+r, sanitizeExcelCell(line.Description))
		f.SetCellValue(sheetName, "C"+r, sanitizeExcelCell(line.Services))
		f.SetCellValue(sheetName, "D"+r, line.Quantity)
		f.SetCellValue(sheetName, "E"+r, line.UnitPrice)
		f.SetCellValue(sheetName, "F"+r, line.Amount)
		f.SetCellStyle(sheetName, "A"+r, lastCol+r, styles.item)
		row++
	}

	row++
	for _, total := range [][2]string{
		{"Subtotal:", data.Subtotal},
		{data.TaxLabel + ":", data.TaxAmount},
		{"Total:", data.Total},
	} {
		r := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "E"+r, total[0])
		f.SetCellStyle(sheetName, "E"+r, "E"+r, styles.summaryLabel)
		f.SetCellValue(sheetName, "F"+r, total[1])
		f.SetCellStyle(sheetName, "F"+r, "F"+r, styles.summaryValue)
		row++
	}

	if data.Notes != "" {
		row++
		r := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+r, "Notes")
		f.SetCellStyle(sheetName, "A"+r, "A"+r, styles.label)
		if err := f.MergeCell(sheetName, "B"+r, lastCol+r); err != nil {
			return nil, fmt.Errorf("merge notes: %w", err)
		}
		f.SetCellValue(sheetName, "B"+r, sanitizeExcelCell(data.Notes))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

type sheetStyles struct {
	title        int
	label        int
	header       int
	item         int
	summaryLabel int
	summaryValue int
}

func newSheetStyles(f *excelize.File) (*sheetStyles, error) {
	var s sheetStyles
	var err error

	if s.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	}); err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	if s.label, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 10, Color: "#646464"},
	}); err != nil {
		return nil, fmt.Errorf("create label style: %w", err)
	}

	if s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#212529"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	}); err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if s.item, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
		Border:    thinBorders(),
	}); err != nil {
		return nil, fmt.Errorf("create item style: %w", err)
	}

	if s.summaryLabel, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	}); err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	if s.summaryValue, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	}); err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	return &s, nil
}

// sanitizeExcelCell prefixes values Excel would treat as formulas with a single quote
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
