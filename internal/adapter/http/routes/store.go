package routes

import (
	"context"
	"fmt"

	"github.com/mm01rahman/LandlordBD/internal/adapter/persistence/repository"
	"github.com/mm01rahman/LandlordBD/internal/config"
	"github.com/mm01rahman/LandlordBD/internal/infrastructure/database"
	"github.com/mm01rahman/LandlordBD/internal/infrastructure/logger"
	"github.com/mm01rahman/LandlordBD/internal/usecase/interfaces"
)

type store struct {
	agreements interfaces.IAgreementRepository
	payments   interfaces.IPaymentRepository
	properties interfaces.IPropertyRepository
	close      func()
}

func openStore(ctx context.Context, cfg config.Config, log *logger.Logger) (store, error) {
	switch cfg.Store {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return store{}, err
		}
		tables := database.DynamoTables(cfg.DynamoDB)
		return store{
			agreements: repository.NewAgreementDynamoRepository(ddb, tables, log),
			payments:   repository.NewPaymentDynamoRepository(ddb, tables, log),
			properties: repository.NewPropertyDynamoRepository(ddb, tables),
			close:      func() {},
		}, nil

	case config.StorePostgres, config.StoreSQLite:
		db, err := database.ConnectSQL(cfg.Store, cfg.SQL, log)
		if err != nil {
			return store{}, err
		}
		return store{
			agreements: repository.NewAgreementGormRepository(db, log),
			payments:   repository.NewPaymentGormRepository(db, log),
			properties: repository.NewPropertyGormRepository(db),
			close: func() {
				if sqlDB, err := db.DB(); err == nil {
					_ = sqlDB.Close()
				}
			},
		}, nil
	}
	return store{}, fmt.Errorf("unknown store type %q", cfg.Store)
}
