package service

import (
	"context"

	"taxdesk/internal/domain"
	"taxdesk/internal/export"
)

// ImportFailure records a workbook line that could not be created.
type ImportFailure struct {
	Line     int    `json:"line"`
	ItemCode string `json:"item_code,omitempty"`
	Error    string `json:"error"`
}

// ImportResult summarizes a bulk inventory import.
type ImportResult struct {
	Created int             `json:"created"`
	Failed  []ImportFailure `json:"failed"`
}

// ImportInventory creates one item per row through svc. A failing row is
// recorded and the import moves on; only a context error stops it early.
func ImportInventory(ctx context.Context, svc InventoryService, actor domain.Actor, rows []export.InventoryRow) (*ImportResult, error) {
	res := &ImportResult{Failed: []ImportFailure{}}
	for i := range rows {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		row := &rows[i]
		_, err := svc.Create(ctx, actor, InventoryInput{
			ItemCode:     row.ItemCode,
			Name:         row.Name,
			Description:  row.Description,
			Unit:         row.Unit,
			UnitPrice:    row.UnitPrice,
			CurrentStock: row.CurrentStock,
			MinimumStock: row.MinimumStock,
			Location:     row.Location,
			Category:     row.Category,
		})
		if err != nil {
			res.Failed = append(res.Failed, ImportFailure{Line: row.Line, ItemCode: row.ItemCode, Error: err.Error()})
			continue
		}
		res.Created++
	}
	return res, nil
}
