package repository

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"

	"github.com/mm01rahman/LandlordBD/internal/domain/entities"
	"github.com/mm01rahman/LandlordBD/internal/usecase/interfaces"
)

type buildingItem struct {
	ID          string `dynamodbav:"id"`
	UserID      string `dynamodbav:"user_id"`
	Name        string `dynamodbav:"name"`
	Address     string `dynamodbav:"address"`
	City        string `dynamodbav:"city,omitempty"`
	State       string `dynamodbav:"state,omitempty"`
	ZipCode     string `dynamodbav:"zip_code,omitempty"`
	TotalFloors *int   `dynamodbav:"total_floors,omitempty"`
}

type unitItem struct {
	ID         string  `dynamodbav:"id"`
	BuildingID string  `dynamodbav:"building_id"`
	UnitNumber string  `dynamodbav:"unit_number"`
	Floor      *int    `dynamodbav:"floor,omitempty"`
	Type       string  `dynamodbav:"type,omitempty"`
	RentAmount float64 `dynamodbav:"rent_amount"`
	Status     string  `dynamodbav:"status"`
}

type tenantItem struct {
	ID       string `dynamodbav:"id"`
	UserID   string `dynamodbav:"user_id"`
	Name     string `dynamodbav:"name"`
	Phone    string `dynamodbav:"phone"`
	Whatsapp string `dynamodbav:"whatsapp,omitempty"`
	Email    string `dynamodbav:"email,omitempty"`
	Address  string `dynamodbav:"address,omitempty"`
}

// PropertyDynamoRepository reads the buildings, units and tenants tables.
type PropertyDynamoRepository struct {
	ddb    DynamoDBAPI
	tables DynamoTables
}

var _ interfaces.IPropertyRepository = (*PropertyDynamoRepository)(nil)

func NewPropertyDynamoRepository(ddb DynamoDBAPI, tables DynamoTables) *PropertyDynamoRepository {
	return &PropertyDynamoRepository{ddb: ddb, tables: tables}
}

func (r *PropertyDynamoRepository) GetUnit(ctx context.Context, id string) (entities.Unit, error) {
	raw, err := getItem(ctx, r.ddb, r.tables.Units, idKey(id))
	if err != nil || len(raw) == 0 {
		return entities.Unit{}, err
	}
	var it unitItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Unit{}, err
	}
	units, err := r.withBuildings(ctx, []unitItem{it})
	if err != nil {
		return entities.Unit{}, err
	}
	return units[0], nil
}

func (r *PropertyDynamoRepository) GetTenant(ctx context.Context, id string) (entities.Tenant, error) {
	raw, err := getItem(ctx, r.ddb, r.tables.Tenants, idKey(id))
	if err != nil || len(raw) == 0 {
		return entities.Tenant{}, err
	}
	var it tenantItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Tenant{}, err
	}
	return entities.Tenant(it), nil
}

func (r *PropertyDynamoRepository) GetBuilding(ctx context.Context, id string) (entities.Building, error) {
	raw, err := getItem(ctx, r.ddb, r.tables.Buildings, idKey(id))
	if err != nil || len(raw) == 0 {
		return entities.Building{}, err
	}
	var it buildingItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Building{}, err
	}
	return entities.Building(it), nil
}

func (r *PropertyDynamoRepository) ListUnitsByIDs(ctx context.Context, ids []string) ([]entities.Unit, error) {
	raw, err := batchGet(ctx, r.ddb, r.tables.Units, ids)
	if err != nil {
		return nil, err
	}
	var its []unitItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &its); err != nil {
		return nil, err
	}
	return r.withBuildings(ctx, its)
}

func (r *PropertyDynamoRepository) ListTenantsByIDs(ctx context.Context, ids []string) ([]entities.Tenant, error) {
	raw, err := batchGet(ctx, r.ddb, r.tables.Tenants, ids)
	if err != nil {
		return nil, err
	}
	var its []tenantItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &its); err != nil {
		return nil, err
	}
	out := make([]entities.Tenant, 0, len(its))
	for _, it := range its {
		out = append(out, entities.Tenant(it))
	}
	return out, nil
}

func (r *PropertyDynamoRepository) ListUnitsByOwner(ctx context.Context, userID string) ([]entities.Unit, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tables.Buildings, userIDIndex, "user_id", userID)
	if err != nil {
		return nil, err
	}
	var buildings []buildingItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &buildings); err != nil {
		return nil, err
	}
	sort.Slice(buildings, func(i, j int) bool { return buildings[i].ID < buildings[j].ID })

	out := []entities.Unit{}
	for _, b := range buildings {
		units, err := r.unitsOf(ctx, entities.Building(b))
		if err != nil {
			return nil, err
		}
		out = append(out, units...)
	}
	return out, nil
}

func (r *PropertyDynamoRepository) ListUnitsByBuilding(ctx context.Context, buildingID string) ([]entities.Unit, error) {
	b, err := r.GetBuilding(ctx, buildingID)
	if err != nil || b.ID == "" {
		return []entities.Unit{}, err
	}
	return r.unitsOf(ctx, b)
}

func (r *PropertyDynamoRepository) unitsOf(ctx context.Context, b entities.Building) ([]entities.Unit, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tables.Units, buildingIDIndex, "building_id", b.ID)
	if err != nil {
		return nil, err
	}
	var its []unitItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &its); err != nil {
		return nil, err
	}
	sort.Slice(its, func(i, j int) bool { return its[i].UnitNumber < its[j].UnitNumber })

	out := make([]entities.Unit, 0, len(its))
	for _, it := range its {
		u := fromUnitItem(it)
		building := b
		u.Building = &building
		out = append(out, u)
	}
	return out, nil
}

func (r *PropertyDynamoRepository) withBuildings(ctx context.Context, its []unitItem) ([]entities.Unit, error) {
	ids := make([]string, 0, len(its))
	seen := map[string]bool{}
	for _, it := range its {
		if !seen[it.BuildingID] {
			seen[it.BuildingID] = true
			ids = append(ids, it.BuildingID)
		}
	}
	raw, err := batchGet(ctx, r.ddb, r.tables.Buildings, ids)
	if err != nil {
		return nil, err
	}
	var bits []buildingItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &bits); err != nil {
		return nil, err
	}
	buildings := make(map[string]entities.Building, len(bits))
	for _, b := range bits {
		buildings[b.ID] = entities.Building(b)
	}

	out := make([]entities.Unit, 0, len(its))
	for _, it := range its {
		u := fromUnitItem(it)
		if b, ok := buildings[it.BuildingID]; ok {
			u.Building = &b
		}
		out = append(out, u)
	}
	return out, nil
}

func fromUnitItem(it unitItem) entities.Unit {
	return entities.Unit{
		ID:         it.ID,
		BuildingID: it.BuildingID,
		UnitNumber: it.UnitNumber,
		Floor:      it.Floor,
		Type:       it.Type,
		RentAmount: it.RentAmount,
		Status:     entities.UnitStatus(it.Status),
	}
}
