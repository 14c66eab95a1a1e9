package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// XLSXContentType is the MIME type of workbooks produced by WriteXLSX.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WriteXLSX writes t as a single-sheet workbook with a bold, frozen header.
func WriteXLSX(w io.Writer, sheet string, t Table) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(t.Columns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, row := range t.Rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		if err := f.SetSheetRow(sheet, "A"+strconv.Itoa(i+2), &cells); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}
	return f.Write(w)
}

// InventoryRow is one item read from an inventory workbook.
type InventoryRow struct {
	Line         int
	ItemCode     string
	Name         string
	Description  string
	Unit         string
	UnitPrice    decimal.Decimal
	CurrentStock int
	MinimumStock int
	Location     string
	Category     string
}

// inventoryHeaders maps accepted header captions (lowercased) to fields.
var inventoryHeaders = map[string]string{
	"item code":     "item_code",
	"code":          "item_code",
	"name":          "name",
	"item name":     "name",
	"description":   "description",
	"unit":          "unit",
	"unit price":    "unit_price",
	"price":         "unit_price",
	"current stock": "current_stock",
	"stock":         "current_stock",
	"minimum stock": "minimum_stock",
	"location":      "location",
	"category":      "category",
}

// ReadInventory reads the first sheet of an inventory workbook. The first
// row holds headers; rows without a name are skipped. Cell errors are
// reported with their 1-based line.
func ReadInventory(r io.Reader) ([]InventoryRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols := make(map[string]int)
	for i, h := range rows[0] {
		if field, ok := inventoryHeaders[strings.ToLower(strings.TrimSpace(h))]; ok {
			if _, dup := cols[field]; !dup {
				cols[field] = i
			}
		}
	}
	if _, ok := cols["name"]; !ok {
		return nil, fmt.Errorf("missing Name column")
	}

	cell := func(row []string, field string) string {
		i, ok := cols[field]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var out []InventoryRow
	for n, row := range rows[1:] {
		line := n + 2
		item := InventoryRow{
			Line:        line,
			ItemCode:    cell(row, "item_code"),
			Name:        cell(row, "name"),
			Description: cell(row, "description"),
			Unit:        strings.ToLower(cell(row, "unit")),
			Location:    cell(row, "location"),
			Category:    cell(row, "category"),
		}
		if item.Name == "" {
			continue
		}
		if s := cell(row, "unit_price"); s != "" {
			if item.UnitPrice, err = decimal.NewFromString(strings.ReplaceAll(s, ",", "")); err != nil {
				return nil, fmt.Errorf("line %d: unit price %q: %w", line, s, err)
			}
		}
		if item.CurrentStock, err = intCell(cell(row, "current_stock")); err != nil {
			return nil, fmt.Errorf("line %d: current stock: %w", line, err)
		}
		if item.MinimumStock, err = intCell(cell(row, "minimum_stock")); err != nil {
			return nil, fmt.Errorf("line %d: minimum stock: %w", line, err)
		}
		out = append(out, item)
	}
	return out, nil
}

func intCell(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(strings.TrimSuffix(s, ".0"))
}
