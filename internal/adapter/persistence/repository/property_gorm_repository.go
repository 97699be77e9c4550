package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mm01rahman/LandlordBD/internal/domain/entities"
	"github.com/mm01rahman/LandlordBD/internal/usecase/interfaces"
)

// PropertyGormRepository reads buildings, units and tenants from the shared
// SQL database.
type PropertyGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPropertyRepository = (*PropertyGormRepository)(nil)

func NewPropertyGormRepository(db *gorm.DB) *PropertyGormRepository {
	return &PropertyGormRepository{db: db}
}

func (r *PropertyGormRepository) GetUnit(ctx context.Context, id string) (entities.Unit, error) {
	units, err := r.ListUnitsByIDs(ctx, []string{id})
	if err != nil || len(units) == 0 {
		return entities.Unit{}, err
	}
	return units[0], nil
}

func (r *PropertyGormRepository) GetTenant(ctx context.Context, id string) (entities.Tenant, error) {
	var row tenantRow
	res := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&row)
	if res.Error != nil || res.RowsAffected == 0 {
		return entities.Tenant{}, res.Error
	}
	return fromTenantRow(row), nil
}

func (r *PropertyGormRepository) GetBuilding(ctx context.Context, id string) (entities.Building, error) {
	var row buildingRow
	res := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&row)
	if res.Error != nil || res.RowsAffected == 0 {
		return entities.Building{}, res.Error
	}
	return fromBuildingRow(row), nil
}

func (r *PropertyGormRepository) ListUnitsByIDs(ctx context.Context, ids []string) ([]entities.Unit, error) {
	if len(ids) == 0 {
		return []entities.Unit{}, nil
	}
	var rows []unitRow
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.withBuildings(ctx, rows)
}

func (r *PropertyGormRepository) ListTenantsByIDs(ctx context.Context, ids []string) ([]entities.Tenant, error) {
	if len(ids) == 0 {
		return []entities.Tenant{}, nil
	}
	var rows []tenantRow
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Tenant, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromTenantRow(row))
	}
	return out, nil
}

func (r *PropertyGormRepository) ListUnitsByOwner(ctx context.Context, userID string) ([]entities.Unit, error) {
	var rows []unitRow
	err := r.db.WithContext(ctx).
		Joins("JOIN buildings ON buildings.id = units.building_id").
		Where("buildings.user_id = ?", userID).
		Order("units.building_id").
		Order("units.unit_number").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return r.withBuildings(ctx, rows)
}

func (r *PropertyGormRepository) ListUnitsByBuilding(ctx context.Context, buildingID string) ([]entities.Unit, error) {
	var rows []unitRow
	if err := r.db.WithContext(ctx).Where("building_id = ?", buildingID).Order("unit_number").Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.withBuildings(ctx, rows)
}

func (r *PropertyGormRepository) withBuildings(ctx context.Context, rows []unitRow) ([]entities.Unit, error) {
	ids := make([]string, 0, len(rows))
	seen := map[string]bool{}
	for _, row := range rows {
		if !seen[row.BuildingID] {
			seen[row.BuildingID] = true
			ids = append(ids, row.BuildingID)
		}
	}

	buildings := map[string]entities.Building{}
	if len(ids) > 0 {
		var brows []buildingRow
		if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&brows).Error; err != nil {
			return nil, err
		}
		for _, b := range brows {
			buildings[b.ID] = fromBuildingRow(b)
		}
	}

	out := make([]entities.Unit, 0, len(rows))
	for _, row := range rows {
		u := fromUnitRow(row)
		if b, ok := buildings[row.BuildingID]; ok {
			u.Building = &b
		}
		out = append(out, u)
	}
	return out, nil
}
