// Command importinventory loads office inventory items from an Excel workbook.
// The first sheet must carry a header row with at least a Name column.
// Usage: go run ./cmd/importinventory -tenant <uuid> -user <uuid> items.xlsx
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taxdesk/internal/config"
	"taxdesk/internal/domain"
	"taxdesk/internal/export"
	"taxdesk/internal/logger"
	"taxdesk/internal/repository/postgres"
	"taxdesk/internal/service"
	"taxdesk/internal/validator"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	tenant := flag.String("tenant", "", "tenant id")
	user := flag.String("user", "", "user id stamped on created items")
	flag.Parse()
	if flag.NArg() != 1 {
		return fmt.Errorf("usage: importinventory -tenant <uuid> -user <uuid> <file.xlsx>")
	}

	tenantID, err := uuid.Parse(*tenant)
	if err != nil {
		return fmt.Errorf("invalid -tenant: %w", err)
	}
	userID, err := uuid.Parse(*user)
	if err != nil {
		return fmt.Errorf("invalid -user: %w", err)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := export.ReadInventory(f)
	if err != nil {
		return fmt.Errorf("read workbook: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	zlog := logger.New(cfg.Log)
	defer func() { _ = zlog.Sync() }()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	svc := service.NewInventoryService(postgres.NewInventoryRepo(db), postgres.NewTransactor(db), validator.New(), zlog)
	actor := domain.Actor{TenantID: tenantID, UserID: userID, Role: domain.RoleAdmin}

	res, err := service.ImportInventory(context.Background(), svc, actor, rows)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	for _, fail := range res.Failed {
		zlog.Warn("row skipped", zap.Int("line", fail.Line), zap.String("item_code", fail.ItemCode), zap.String("error", fail.Error))
	}
	zlog.Info("inventory import finished",
		zap.Int("rows", len(rows)), zap.Int("created", res.Created), zap.Int("failed", len(res.Failed)))
	return nil
}
