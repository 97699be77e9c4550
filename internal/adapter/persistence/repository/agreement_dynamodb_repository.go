package repository

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/mm01rahman/LandlordBD/internal/domain/entities"
	"github.com/mm01rahman/LandlordBD/internal/infrastructure/logger"
	"github.com/mm01rahman/LandlordBD/internal/usecase/interfaces"
)

type agreementItem struct {
	ID              string  `dynamodbav:"id"`
	UserID          string  `dynamodbav:"user_id"`
	TenantID        string  `dynamodbav:"tenant_id"`
	UnitID          string  `dynamodbav:"unit_id"`
	StartDate       string  `dynamodbav:"start_date"`
	EndDate         string  `dynamodbav:"end_date,omitempty"`
	EndDateActual   string  `dynamodbav:"end_date_actual,omitempty"`
	MonthlyRent     float64 `dynamodbav:"monthly_rent"`
	SecurityDeposit float64 `dynamodbav:"security_deposit"`
	Status          string  `dynamodbav:"status"`
	Notes           *string `dynamodbav:"notes,omitempty"`
	RowVersion      int64   `dynamodbav:"row_version"`
	CreatedAt       string  `dynamodbav:"created_at"`
	UpdatedAt       string  `dynamodbav:"updated_at"`
}

// AgreementDynamoRepository persists RentalAgreement items in DynamoDB.
//
// A live agreement owns the guard item active_unit#<unit_id> in the
// constraints table. The guard, the agreement and the unit status flips are
// written in a single TransactWriteItems call.
type AgreementDynamoRepository struct {
	ddb    DynamoDBAPI
	tables DynamoTables
	log    *logger.Logger
}

var _ interfaces.IAgreementRepository = (*AgreementDynamoRepository)(nil)

func NewAgreementDynamoRepository(ddb DynamoDBAPI, tables DynamoTables, log *logger.Logger) *AgreementDynamoRepository {
	return &AgreementDynamoRepository{
		ddb:    ddb,
		tables: tables,
		log:    logger.OrNop(log).With("repo", "AgreementDynamoRepository"),
	}
}

func (r *AgreementDynamoRepository) Create(ctx context.Context, a entities.RentalAgreement, units []entities.UnitStatusUpdate) (entities.RentalAgreement, error) {
	av, err := attributevalue.MarshalMap(toAgreementItem(a))
	if err != nil {
		return entities.RentalAgreement{}, err
	}

	items := []types.TransactWriteItem{{Put: &types.Put{
		TableName:                aws.String(r.tables.Agreements),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}}}
	guardAt := -1
	if a.IsLive() {
		guardAt = len(items)
		items = append(items, putGuard(r.tables.Constraints, activeUnitKey(a.UnitID), a.ID))
	}
	items = append(items, r.unitUpdates(units)...)

	err = transactWrite(ctx, r.ddb, items, func(f txFailure) error {
		if guardAt >= 0 && f.failed[guardAt] {
			return interfaces.ErrUniqueActiveAgreement
		}
		return nil
	})
	if err != nil {
		return entities.RentalAgreement{}, err
	}
	return a, nil
}

func (r *AgreementDynamoRepository) Update(ctx context.Context, prev, next entities.RentalAgreement, units []entities.UnitStatusUpdate) (entities.RentalAgreement, error) {
	av, err := attributevalue.MarshalMap(toAgreementItem(next))
	if err != nil {
		return entities.RentalAgreement{}, err
	}

	items := []types.TransactWriteItem{{Put: &types.Put{
		TableName:                aws.String(r.tables.Agreements),
		Item:                     av,
		ConditionExpression:      aws.String("#uid = :uid AND #rv = :rv"),
		ExpressionAttributeNames: map[string]string{"#uid": "user_id", "#rv": "row_version"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: prev.UserID},
			":rv":  &types.AttributeValueMemberN{Value: formatInt(prev.RowVersion)},
		},
	}}}

	// A live agreement keeps its guard while it stays live on the same unit.
	keep := prev.IsLive() && next.IsLive() && prev.UnitID == next.UnitID
	guardAt := -1
	if prev.IsLive() && !keep {
		items = append(items, deleteGuard(r.tables.Constraints, activeUnitKey(prev.UnitID), prev.ID))
	}
	if next.IsLive() && !keep {
		guardAt = len(items)
		items = append(items, putGuard(r.tables.Constraints, activeUnitKey(next.UnitID), next.ID))
	}
	items = append(items, r.unitUpdates(units)...)

	err = transactWrite(ctx, r.ddb, items, func(f txFailure) error {
		if guardAt >= 0 && f.failed[guardAt] {
			return interfaces.ErrUniqueActiveAgreement
		}
		if f.failed[0] {
			r.log.Debug("stale agreement write", "agreement_id", prev.ID, "row_version", prev.RowVersion)
			return interfaces.ErrStaleWrite
		}
		return nil
	})
	if err != nil {
		return entities.RentalAgreement{}, err
	}
	return next, nil
}

func (r *AgreementDynamoRepository) GetByID(ctx context.Context, userID, id string) (entities.RentalAgreement, error) {
	a, err := r.get(ctx, id)
	if err != nil || a.UserID != userID {
		return entities.RentalAgreement{}, err
	}
	return a, nil
}

func (r *AgreementDynamoRepository) FindLiveByUnit(ctx context.Context, unitID string) (entities.RentalAgreement, error) {
	raw, err := getItem(ctx, r.ddb, r.tables.Constraints, guardKey(activeUnitKey(unitID)))
	if err != nil || len(raw) == 0 {
		return entities.RentalAgreement{}, err
	}
	var g guardItem
	if err := attributevalue.UnmarshalMap(raw, &g); err != nil {
		return entities.RentalAgreement{}, err
	}

	a, err := r.get(ctx, g.RefID)
	if err != nil || !a.IsLive() || a.UnitID != unitID {
		return entities.RentalAgreement{}, err
	}
	return a, nil
}

func (r *AgreementDynamoRepository) List(ctx context.Context, filter entities.AgreementFilter) ([]entities.RentalAgreement, error) {
	var (
		raw []map[string]types.AttributeValue
		err error
	)
	if filter.UnitID != "" {
		raw, err = queryIndex(ctx, r.ddb, r.tables.Agreements, unitIDIndex, "unit_id", filter.UnitID)
	} else {
		raw, err = queryIndex(ctx, r.ddb, r.tables.Agreements, userIDIndex, "user_id", filter.UserID)
	}
	if err != nil {
		return nil, err
	}

	var its []agreementItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &its); err != nil {
		return nil, err
	}
	out := make([]entities.RentalAgreement, 0, len(its))
	for _, it := range its {
		a := fromAgreementItem(it)
		if matchAgreement(a, filter) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].StartDate.After(out[j].StartDate)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *AgreementDynamoRepository) get(ctx context.Context, id string) (entities.RentalAgreement, error) {
	raw, err := getItem(ctx, r.ddb, r.tables.Agreements, idKey(id))
	if err != nil || len(raw) == 0 {
		return entities.RentalAgreement{}, err
	}
	var it agreementItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.RentalAgreement{}, err
	}
	return fromAgreementItem(it), nil
}

func (r *AgreementDynamoRepository) unitUpdates(units []entities.UnitStatusUpdate) []types.TransactWriteItem {
	items := make([]types.TransactWriteItem, 0, len(units))
	for _, u := range units {
		items = append(items, types.TransactWriteItem{Update: &types.Update{
			TableName:                 aws.String(r.tables.Units),
			Key:                       idKey(u.UnitID),
			UpdateExpression:          aws.String("SET #status = :status"),
			ConditionExpression:       aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames:  map[string]string{"#status": "status", "#id": "id"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":status": &types.AttributeValueMemberS{Value: string(u.Status)}},
		}})
	}
	return items
}

func matchAgreement(a entities.RentalAgreement, f entities.AgreementFilter) bool {
	switch {
	case a.UserID != f.UserID:
		return false
	case f.Status != "" && a.Status != f.Status:
		return false
	case f.TenantID != "" && a.TenantID != f.TenantID:
		return false
	case f.UnitID != "" && a.UnitID != f.UnitID:
		return false
	}
	if f.EndDateFrom != nil || f.EndDateTo != nil {
		if a.EndDate == nil {
			return false
		}
		if f.EndDateFrom != nil && a.EndDate.Before(entities.DateOnly(*f.EndDateFrom)) {
			return false
		}
		if f.EndDateTo != nil && a.EndDate.After(entities.DateOnly(*f.EndDateTo)) {
			return false
		}
	}
	return true
}

func toAgreementItem(a entities.RentalAgreement) agreementItem {
	return agreementItem{
		ID:              a.ID,
		UserID:          a.UserID,
		TenantID:        a.TenantID,
		UnitID:          a.UnitID,
		StartDate:       formatDate(a.StartDate),
		EndDate:         formatDatePtr(a.EndDate),
		EndDateActual:   formatDatePtr(a.EndDateActual),
		MonthlyRent:     entities.RoundMoney(a.MonthlyRent),
		SecurityDeposit: entities.RoundMoney(a.SecurityDeposit),
		Status:          string(a.Status),
		Notes:           a.Notes,
		RowVersion:      a.RowVersion,
		CreatedAt:       formatStamp(a.CreatedAt),
		UpdatedAt:       formatStamp(a.UpdatedAt),
	}
}

func fromAgreementItem(it agreementItem) entities.RentalAgreement {
	return entities.RentalAgreement{
		ID:              it.ID,
		UserID:          it.UserID,
		TenantID:        it.TenantID,
		UnitID:          it.UnitID,
		StartDate:       parseDate(it.StartDate),
		EndDate:         parseDatePtr(it.EndDate),
		EndDateActual:   parseDatePtr(it.EndDateActual),
		MonthlyRent:     it.MonthlyRent,
		SecurityDeposit: it.SecurityDeposit,
		Status:          entities.AgreementStatus(it.Status),
		Notes:           it.Notes,
		RowVersion:      it.RowVersion,
		CreatedAt:       parseStamp(it.CreatedAt),
		UpdatedAt:       parseStamp(it.UpdatedAt),
	}
}
