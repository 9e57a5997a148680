package postgres

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	// postgres ドライバと file ソースを登録する
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// MigrationAction は golang-migrate に対する操作です。
type MigrationAction string

const (
	MigrateUp      MigrationAction = "up"
	MigrateDown    MigrationAction = "down"
	MigrateDrop    MigrationAction = "drop"
	MigrateVersion MigrationAction = "version"
)

// MigrationResult はマイグレーション実行後のスキーマ状態です。
type MigrationResult struct {
	Version uint
	Dirty   bool
	// Applied は 1 件以上のマイグレーションが適用・取り消しされた場合に true です。
	Applied bool
}

// RunMigration は dir 配下のマイグレーションを dsn のデータベースへ適用します。
func RunMigration(action MigrationAction, dir, dsn string) (MigrationResult, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("postgres: resolve path for %s: %w", dir, err)
	}

	m, err := migrate.New("file://"+filepath.ToSlash(absDir), dsn)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("postgres: create migrate instance: %w", err)
	}
	defer m.Close()

	var result MigrationResult
	switch action {
	case MigrateUp:
		result.Applied, err = changed(m.Up())
	case MigrateDown:
		result.Applied, err = changed(m.Down())
	case MigrateDrop:
		if err := m.Drop(); err != nil {
			return MigrationResult{}, fmt.Errorf("postgres: migrate %s: %w", action, err)
		}
		// 管理テーブルごと削除されるためバージョンは読めない
		return MigrationResult{Applied: true}, nil
	case MigrateVersion:
	default:
		return MigrationResult{}, fmt.Errorf("postgres: unsupported migration action %q", action)
	}
	if err != nil {
		return MigrationResult{}, fmt.Errorf("postgres: migrate %s: %w", action, err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return MigrationResult{}, fmt.Errorf("postgres: read migration version: %w", err)
	}
	result.Version = version
	result.Dirty = dirty
	return result, nil
}

func changed(err error) (bool, error) {
	if errors.Is(err, migrate.ErrNoChange) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
