package usecase

import (
	"context"

	"github.com/mm01rahman/LandlordBD/internal/domain/entities"
	"github.com/mm01rahman/LandlordBD/internal/usecase/interfaces"
)

// relations is a batch of tenants and units (with buildings) keyed by id.
type relations struct {
	tenants map[string]entities.Tenant
	units   map[string]entities.Unit
}

func loadRelations(ctx context.Context, props interfaces.IPropertyRepository, tenantIDs, unitIDs []string) (relations, error) {
	rel := relations{
		tenants: map[string]entities.Tenant{},
		units:   map[string]entities.Unit{},
	}
	if ids := uniqueStrings(tenantIDs); len(ids) > 0 {
		tenants, err := props.ListTenantsByIDs(ctx, ids)
		if err != nil {
			return relations{}, err
		}
		for _, t := range tenants {
			rel.tenants[t.ID] = t
		}
	}
	if ids := uniqueStrings(unitIDs); len(ids) > 0 {
		units, err := props.ListUnitsByIDs(ctx, ids)
		if err != nil {
			return relations{}, err
		}
		for _, u := range units {
			rel.units[u.ID] = u
		}
	}
	return rel, nil
}

func (r relations) tenant(id string) *entities.Tenant {
	t, ok := r.tenants[id]
	if !ok {
		return nil
	}
	return &t
}

func (r relations) unit(id string) *entities.Unit {
	u, ok := r.units[id]
	if !ok {
		return nil
	}
	return &u
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
