package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/ogurasousui/codex-timeoff/internal/platform/config"
	pg "github.com/ogurasousui/codex-timeoff/internal/platform/db/postgres"
)

func main() {
	var (
		configPath    = flag.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
		migrationsDir = flag.String("dir", "", "directory containing migration files (defaults to database.migrations_dir)")
	)
	flag.Parse()

	action := pg.MigrateUp
	if flag.NArg() > 0 {
		action = pg.MigrationAction(flag.Arg(0))
	}

	_ = godotenv.Load()

	cfg, err := config.Load(effectiveConfigPath(*configPath))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.Store.Driver != config.StoreDriverPostgres {
		log.Fatalf("store.driver is %q; migrations require %q", cfg.Store.Driver, config.StoreDriverPostgres)
	}

	dir := *migrationsDir
	if dir == "" {
		dir = cfg.Database.MigrationsDir
	}

	result, err := pg.RunMigration(action, dir, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("migration %s failed: %v", action, err)
	}

	switch action {
	case pg.MigrateVersion:
		if result.Version == 0 {
			log.Printf("no migration applied")
			return
		}
		log.Printf("version=%d dirty=%t", result.Version, result.Dirty)
	default:
		log.Printf("migration %s completed (changed=%t version=%d)", action, result.Applied, result.Version)
	}
}

func effectiveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "assets/local.yaml"
}
