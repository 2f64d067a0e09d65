// Command seed inserts the sample catalogue. Sweets with the same names are
// replaced, so it can be rerun safely.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"sweet-shop/internal/config"
	"sweet-shop/internal/database"
	"sweet-shop/internal/logging"
	"sweet-shop/internal/model"
	"sweet-shop/internal/store"
)

var seeds = []model.Sweet{
	{
		Name:        "Dark Chocolate Truffle Box",
		Category:    model.CategoryChocolate,
		Price:       24.5,
		Quantity:    40,
		Description: "Rich 70% cacao truffles with a hint of sea salt, boxed for gifting.",
		ImageURL:    "https://images.unsplash.com/photo-1470337458703-46ad1756a187?auto=format&fit=crop&w=800&q=80",
	},
	{
		Name:        "Sea Salt Caramel Squares",
		Category:    model.CategoryToffee,
		Price:       14.0,
		Quantity:    55,
		Description: "Slow-cooked butter caramels finished with flaky sea salt.",
		ImageURL:    "https://images.unsplash.com/photo-1499636136210-6f4ee915583e?auto=format&fit=crop&w=800&q=80",
	},
	{
		Name:        "Berry Gummy Stars",
		Category:    model.CategoryGummy,
		Price:       9.5,
		Quantity:    120,
		Description: "Strawberry, raspberry, and blueberry gummies made with fruit juice.",
		ImageURL:    "https://images.unsplash.com/photo-1504674900247-0877df9cc836?auto=format&fit=crop&w=800&q=80",
	},
	{
		Name:        "Citrus Twist Lollipops",
		Category:    model.CategoryLollipop,
		Price:       8.0,
		Quantity:    90,
		Description: "Small-batch lollies with lemon, orange, and grapefruit layers.",
		ImageURL:    "https://images.unsplash.com/photo-1505253758473-96b7015fcd40?auto=format&fit=crop&w=800&q=80",
	},
	{
		Name:        "Honey Almond Nougat",
		Category:    model.CategoryCandy,
		Price:       12.75,
		Quantity:    35,
		Description: "Soft nougat with toasted almonds, honey, and vanilla bean.",
		ImageURL:    "https://images.unsplash.com/photo-1528207776546-365bb710ee93?auto=format&fit=crop&w=800&q=80",
	},
	{
		Name:        "Espresso Brittle Shards",
		Category:    model.CategoryHardCandy,
		Price:       11.25,
		Quantity:    60,
		Description: "Coffee-infused brittle with roasted nuts and a dark crackly snap.",
		ImageURL:    "https://images.unsplash.com/photo-1504674900247-0877df9cc836?auto=format&fit=crop&w=800&q=80",
	},
}

var (
	loadConfig         = config.Load
	newLogger          = logging.New
	newPgxPool         = database.NewPgxPool
	runMigrationsFn    = database.RunMigrations
	rollbackAllFn      = database.RollbackAll
	deleteSweetsByName = store.DeleteSweetsByName
	createSweet        = store.CreateSweet
	exitFunc           = os.Exit
)

func run(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	reset := fs.Bool("reset", false, "drop every table and re-run migrations before seeding")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("Logger 建立失敗: %w", err)
	}

	if *reset {
		logger.Warn("rolling back all migrations")
		if err := rollbackAllFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("Rollback 執行失敗: %w", err)
		}
	}
	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	ctx := context.Background()
	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	names := make([]string, len(seeds))
	for i, s := range seeds {
		names[i] = s.Name
	}
	removed, err := deleteSweetsByName(ctx, db, names)
	if err != nil {
		return err
	}

	for _, s := range seeds {
		s := s
		if _, err := createSweet(ctx, db, &s); err != nil {
			return err
		}
	}
	logger.Info("seeded sweets", slog.Int("inserted", len(seeds)), slog.Int64("replaced", removed))
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Print("Seeding failed: ", err)
		exitFunc(1)
	}
}
