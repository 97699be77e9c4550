package repository

import (
	"context"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/mm01rahman/LandlordBD/internal/domain/entities"
	"github.com/mm01rahman/LandlordBD/internal/infrastructure/logger"
	"github.com/mm01rahman/LandlordBD/internal/usecase/interfaces"
)

type paymentItem struct {
	ID            string  `dynamodbav:"id"`
	AgreementID   string  `dynamodbav:"agreement_id"`
	UserID        string  `dynamodbav:"user_id"`
	TenantID      string  `dynamodbav:"tenant_id"`
	UnitID        string  `dynamodbav:"unit_id"`
	BillingMonth  string  `dynamodbav:"billing_month"`
	AmountDue     float64 `dynamodbav:"amount_due"`
	AmountPaid    float64 `dynamodbav:"amount_paid"`
	Status        string  `dynamodbav:"status"`
	PaymentDate   string  `dynamodbav:"payment_date,omitempty"`
	PaymentMethod *string `dynamodbav:"payment_method,omitempty"`
	Notes         *string `dynamodbav:"notes,omitempty"`
	RowVersion    int64   `dynamodbav:"row_version"`
	CreatedAt     string  `dynamodbav:"created_at"`
	UpdatedAt     string  `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment items in DynamoDB. Each payment
// owns the guard item payment_period#<agreement_id>#<YYYY-MM>.
type PaymentDynamoRepository struct {
	ddb    DynamoDBAPI
	tables DynamoTables
	log    *logger.Logger
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoDBAPI, tables DynamoTables, log *logger.Logger) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:    ddb,
		tables: tables,
		log:    logger.OrNop(log).With("repo", "PaymentDynamoRepository"),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	items := []types.TransactWriteItem{
		{Put: &types.Put{
			TableName:                aws.String(r.tables.Payments),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
		putGuard(r.tables.Constraints, paymentPeriodKey(p.AgreementID, p.BillingMonth), p.ID),
	}
	err = transactWrite(ctx, r.ddb, items, func(f txFailure) error {
		if f.failed[1] {
			return interfaces.ErrUniqueBillingPeriod
		}
		return nil
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) Update(ctx context.Context, prev, next entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(next))
	if err != nil {
		return entities.Payment{}, err
	}

	items := []types.TransactWriteItem{{Put: &types.Put{
		TableName:                aws.String(r.tables.Payments),
		Item:                     av,
		ConditionExpression:      aws.String("#uid = :uid AND #rv = :rv"),
		ExpressionAttributeNames: map[string]string{"#uid": "user_id", "#rv": "row_version"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: prev.UserID},
			":rv":  &types.AttributeValueMemberN{Value: formatInt(prev.RowVersion)},
		},
	}}}
	guardAt := -1
	oldKey := paymentPeriodKey(prev.AgreementID, prev.BillingMonth)
	newKey := paymentPeriodKey(next.AgreementID, next.BillingMonth)
	if oldKey != newKey {
		items = append(items, deleteGuard(r.tables.Constraints, oldKey, prev.ID))
		guardAt = len(items)
		items = append(items, putGuard(r.tables.Constraints, newKey, next.ID))
	}

	err = transactWrite(ctx, r.ddb, items, func(f txFailure) error {
		if guardAt >= 0 && f.failed[guardAt] {
			return interfaces.ErrUniqueBillingPeriod
		}
		if f.failed[0] {
			r.log.Debug("stale payment write", "payment_id", prev.ID, "row_version", prev.RowVersion)
			return interfaces.ErrStaleWrite
		}
		return nil
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return next, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, userID, id string) (entities.Payment, error) {
	p, err := r.get(ctx, id)
	if err != nil || p.UserID != userID {
		return entities.Payment{}, err
	}
	return p, nil
}

// FindByAgreementMonth resolves the guard item first so the lookup is a
// consistent read.
func (r *PaymentDynamoRepository) FindByAgreementMonth(ctx context.Context, agreementID string, billingMonth time.Time) (entities.Payment, error) {
	raw, err := getItem(ctx, r.ddb, r.tables.Constraints, guardKey(paymentPeriodKey(agreementID, entities.MonthStart(billingMonth))))
	if err != nil || len(raw) == 0 {
		return entities.Payment{}, err
	}
	var g guardItem
	if err := attributevalue.UnmarshalMap(raw, &g); err != nil {
		return entities.Payment{}, err
	}
	return r.get(ctx, g.RefID)
}

func (r *PaymentDynamoRepository) List(ctx context.Context, filter entities.PaymentFilter) ([]entities.Payment, error) {
	if filter.UnitIDs != nil && len(filter.UnitIDs) == 0 {
		return []entities.Payment{}, nil
	}

	var (
		raw []map[string]types.AttributeValue
		err error
	)
	if filter.AgreementID != "" {
		raw, err = queryIndex(ctx, r.ddb, r.tables.Payments, agreementIDIndex, "agreement_id", filter.AgreementID)
	} else {
		raw, err = queryIndex(ctx, r.ddb, r.tables.Payments, userIDIndex, "user_id", filter.UserID)
	}
	if err != nil {
		return nil, err
	}

	var its []paymentItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &its); err != nil {
		return nil, err
	}
	m := newPaymentMatcher(filter)
	out := make([]entities.Payment, 0, len(its))
	for _, it := range its {
		p := fromPaymentItem(it)
		if m.match(p) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].BillingMonth.Equal(out[j].BillingMonth) {
			return out[i].BillingMonth.After(out[j].BillingMonth)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *PaymentDynamoRepository) get(ctx context.Context, id string) (entities.Payment, error) {
	raw, err := getItem(ctx, r.ddb, r.tables.Payments, idKey(id))
	if err != nil || len(raw) == 0 {
		return entities.Payment{}, err
	}
	var it paymentItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

type paymentMatcher struct {
	filter   entities.PaymentFilter
	units    map[string]bool
	statuses map[entities.PaymentStatus]bool
}

func newPaymentMatcher(f entities.PaymentFilter) paymentMatcher {
	m := paymentMatcher{filter: f}
	if f.UnitIDs != nil {
		m.units = make(map[string]bool, len(f.UnitIDs))
		for _, id := range f.UnitIDs {
			m.units[id] = true
		}
	}
	if len(f.Statuses) > 0 {
		m.statuses = make(map[entities.PaymentStatus]bool, len(f.Statuses))
		for _, s := range f.Statuses {
			m.statuses[s] = true
		}
	}
	return m
}

func (m paymentMatcher) match(p entities.Payment) bool {
	f := m.filter
	switch {
	case p.UserID != f.UserID:
		return false
	case f.AgreementID != "" && p.AgreementID != f.AgreementID:
		return false
	case f.TenantID != "" && p.TenantID != f.TenantID:
		return false
	case m.units != nil && !m.units[p.UnitID]:
		return false
	case m.statuses != nil && !m.statuses[p.Status]:
		return false
	case f.BillingFrom != nil && p.BillingMonth.Before(entities.DateOnly(*f.BillingFrom)):
		return false
	case f.BillingTo != nil && p.BillingMonth.After(entities.DateOnly(*f.BillingTo)):
		return false
	}
	return true
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:            p.ID,
		AgreementID:   p.AgreementID,
		UserID:        p.UserID,
		TenantID:      p.TenantID,
		UnitID:        p.UnitID,
		BillingMonth:  formatDate(p.BillingMonth),
		AmountDue:     entities.RoundMoney(p.AmountDue),
		AmountPaid:    entities.RoundMoney(p.AmountPaid),
		Status:        string(p.Status),
		PaymentDate:   formatDatePtr(p.PaymentDate),
		PaymentMethod: p.PaymentMethod,
		Notes:         p.Notes,
		RowVersion:    p.RowVersion,
		CreatedAt:     formatStamp(p.CreatedAt),
		UpdatedAt:     formatStamp(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:            it.ID,
		AgreementID:   it.AgreementID,
		UserID:        it.UserID,
		TenantID:      it.TenantID,
		UnitID:        it.UnitID,
		BillingMonth:  parseDate(it.BillingMonth),
		AmountDue:     it.AmountDue,
		AmountPaid:    it.AmountPaid,
		Status:        entities.PaymentStatus(it.Status),
		PaymentDate:   parseDatePtr(it.PaymentDate),
		PaymentMethod: it.PaymentMethod,
		Notes:         it.Notes,
		RowVersion:    it.RowVersion,
		CreatedAt:     parseStamp(it.CreatedAt),
		UpdatedAt:     parseStamp(it.UpdatedAt),
	}
}
