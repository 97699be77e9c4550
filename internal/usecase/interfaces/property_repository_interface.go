package interfaces

import (
	"context"

	"github.com/mm01rahman/LandlordBD/internal/domain/entities"
)

// IPropertyRepository reads the buildings, units and tenants maintained by the
// building management service. Lookups by id are not owner scoped so callers
// can tell "forbidden" from "unknown"; the use cases perform the owner checks.
//
// Units are always returned with their Building populated.
type IPropertyRepository interface {
	GetUnit(ctx context.Context, id string) (entities.Unit, error)
	GetTenant(ctx context.Context, id string) (entities.Tenant, error)
	GetBuilding(ctx context.Context, id string) (entities.Building, error)
	ListUnitsByIDs(ctx context.Context, ids []string) ([]entities.Unit, error)
	ListTenantsByIDs(ctx context.Context, ids []string) ([]entities.Tenant, error)
	// ListUnitsByOwner joins units to the buildings owned by userID.
	ListUnitsByOwner(ctx context.Context, userID string) ([]entities.Unit, error)
	ListUnitsByBuilding(ctx context.Context, buildingID string) ([]entities.Unit, error)
}
