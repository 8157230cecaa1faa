// Package report renders the administrator statistics as a spreadsheet.
package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"coride/internal/model"
)

// Sheet names.
const (
	SummarySheet     = "Summary"
	DepartmentsSheet = "Departments"
)

// Row is a labelled figure on the summary sheet.
type Row struct {
	Label string
	Value interface{}
}

// Build writes the summary rows and department figures into a workbook.
func Build(summary []Row, departments []model.DepartmentStats) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(SummarySheet, "A1", &[]interface{}{"Metric", "Value"}); err != nil {
		return nil, fmt.Errorf("write summary header: %w", err)
	}
	for i, row := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SummarySheet, cell, &[]interface{}{row.Label, row.Value}); err != nil {
			return nil, fmt.Errorf("write summary row: %w", err)
		}
	}

	if _, err := f.NewSheet(DepartmentsSheet); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	header := []interface{}{"Department", "Rides", "Users", "CO2 saved (kg)"}
	if err := f.SetSheetRow(DepartmentsSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write departments header: %w", err)
	}
	for i, d := range departments {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{d.Department, d.RidesCount, d.UsersCount, d.CO2Saved}
		if err := f.SetSheetRow(DepartmentsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write department row: %w", err)
		}
	}

	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = f.SetCellStyle(SummarySheet, "A1", "B1", style)
		_ = f.SetCellStyle(DepartmentsSheet, "A1", "D1", style)
	}
	_ = f.SetColWidth(SummarySheet, "A", "A", 26)
	_ = f.SetColWidth(DepartmentsSheet, "A", "A", 18)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
