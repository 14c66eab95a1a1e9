package handler

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taxdesk/internal/domain"
	"taxdesk/internal/export"
	"taxdesk/internal/service"
)

// sendTable renders t in the requested format ("csv" or "xlsx") as an attachment.
func sendTable(c *gin.Context, name, format string, t export.Table) {
	var buf bytes.Buffer
	var contentType, ext string
	switch format {
	case "", "csv":
		if err := export.WriteCSV(&buf, t); err != nil {
			HandleError(c, fmt.Errorf("write csv: %w", err))
			return
		}
		contentType, ext = "text/csv; charset=utf-8", "csv"
	case "xlsx":
		if err := export.WriteXLSX(&buf, name, t); err != nil {
			HandleError(c, fmt.Errorf("write xlsx: %w", err))
			return
		}
		contentType, ext = export.XLSXContentType, "xlsx"
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "format must be csv or xlsx")
		return
	}

	filename := export.BuildFilename(name, ext, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// clientNames maps every client id of the tenant to its name.
func clientNames(ctx context.Context, clients service.ClientService, actor domain.Actor) (map[uuid.UUID]string, error) {
	all, _, err := clients.List(ctx, actor, domain.ListFilter{})
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(all))
	for i := range all {
		names[all[i].ID] = all[i].Name
	}
	return names, nil
}
