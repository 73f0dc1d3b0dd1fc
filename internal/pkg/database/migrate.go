package database

import (
	"Gramscope/internal/model"
	"Gramscope/internal/pkg/consts"
	"fmt"
	log "log/slog"

	"gorm.io/gorm"
)

// Migrate 启动时保证三张表存在，与请求处理逻辑分离。
// accounts 表首次创建时写入示例账号
func Migrate(db *gorm.DB) error {
	fresh := !db.Migrator().HasTable(&model.Account{})

	if err := db.AutoMigrate(
		&model.Account{},
		&model.ProfileSnapshot{},
		&model.AccountRanking{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	if fresh {
		if err := seedAccounts(db); err != nil {
			return fmt.Errorf("failed to seed accounts: %w", err)
		}
	}

	log.Info("Database schema is up to date.", "seeded", fresh)
	return nil
}

func seedAccounts(db *gorm.DB) error {
	for _, username := range consts.SeedAccounts {
		account := &model.Account{
			Username: username,
			Status:   consts.AccountStatusActive,
		}
		if err := db.Create(account).Error; err != nil {
			return err
		}
	}
	log.Info("Sample accounts seeded.", "count", len(consts.SeedAccounts))
	return nil
}
