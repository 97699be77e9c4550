package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/mm01rahman/LandlordBD/internal/adapter/persistence/repository"
	"github.com/mm01rahman/LandlordBD/internal/config"
	"github.com/mm01rahman/LandlordBD/internal/infrastructure/logger"
)

// ConnectSQL opens the PostgreSQL or SQLite store and optionally migrates it.
func ConnectSQL(store string, flags config.SQLFlags, appLog *logger.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch store {
	case config.StorePostgres:
		dialector = postgres.Open(flags.DSN)
	case config.StoreSQLite:
		dialector = sqlite.Open(flags.DSN)
	default:
		return nil, fmt.Errorf("unsupported sql store %q", store)
	}

	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormLog,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", store, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if store == config.StoreSQLite {
		// SQLite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(flags.MaxOpenConns)
		sqlDB.SetMaxIdleConns(flags.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(flags.ConnMaxLife)
	}

	if flags.AutoMigrate {
		if err := repository.MigrateSQL(db); err != nil {
			return nil, fmt.Errorf("failed to migrate %s: %w", store, err)
		}
		logger.OrNop(appLog).Info("sql schema migrated", "store", store)
	}
	return db, nil
}
