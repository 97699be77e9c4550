package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cenkalti/backoff/v5"
)

const (
	dateLayout  = "2006-01-02"
	stampLayout = time.RFC3339Nano

	// batchGetLimit is the BatchGetItem key cap per request.
	batchGetLimit = 100
	txMaxTries    = 5
)

// DynamoDBAPI is the subset of the DynamoDB client used by the repositories.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoDBAPI = (*dynamodb.Client)(nil)

// DynamoTables names the tables backing the DynamoDB store.
//
// Table requirements:
//   - agreements: PK id; GSI user_id-index (user_id), unit_id-index (unit_id)
//   - payments: PK id; GSI user_id-index (user_id), agreement_id-index (agreement_id)
//   - buildings: PK id; GSI user_id-index (user_id)
//   - units: PK id; GSI building_id-index (building_id)
//   - tenants: PK id
//   - unique_constraints: PK pk
type DynamoTables struct {
	Agreements  string
	Payments    string
	Buildings   string
	Units       string
	Tenants     string
	Constraints string
}

const (
	userIDIndex      = "user_id-index"
	unitIDIndex      = "unit_id-index"
	agreementIDIndex = "agreement_id-index"
	buildingIDIndex  = "building_id-index"
)

// guardItem reserves a uniqueness key in the constraints table. RefID is the
// id of the row holding the key.
type guardItem struct {
	PK    string `dynamodbav:"pk"`
	RefID string `dynamodbav:"ref_id"`
}

func activeUnitKey(unitID string) string {
	return "active_unit#" + unitID
}

func paymentPeriodKey(agreementID string, month time.Time) string {
	return "payment_period#" + agreementID + "#" + month.Format("2006-01")
}

func stringKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{name: &types.AttributeValueMemberS{Value: value}}
}

func idKey(id string) map[string]types.AttributeValue {
	return stringKey("id", id)
}

func guardKey(pk string) map[string]types.AttributeValue {
	return stringKey("pk", pk)
}

func putGuard(table, pk, refID string) types.TransactWriteItem {
	return types.TransactWriteItem{Put: &types.Put{
		TableName: aws.String(table),
		Item: map[string]types.AttributeValue{
			"pk":     &types.AttributeValueMemberS{Value: pk},
			"ref_id": &types.AttributeValueMemberS{Value: refID},
		},
		ConditionExpression:      aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{"#pk": "pk"},
	}}
}

func deleteGuard(table, pk, refID string) types.TransactWriteItem {
	return types.TransactWriteItem{Delete: &types.Delete{
		TableName:                 aws.String(table),
		Key:                       guardKey(pk),
		ConditionExpression:       aws.String("#ref = :ref"),
		ExpressionAttributeNames:  map[string]string{"#ref": "ref_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":ref": &types.AttributeValueMemberS{Value: refID}},
	}}
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}

func parseDate(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}

func parseDatePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseDate(s)
	return &t
}

func formatStamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(stampLayout)
}

func parseStamp(s string) time.Time {
	t, _ := time.Parse(stampLayout, s)
	return t
}

// txFailure reports which transaction items failed their condition and whether
// DynamoDB cancelled the transaction because of a concurrent one.
type txFailure struct {
	failed   map[int]bool
	conflict bool
}

func inspectTx(err error) (txFailure, bool) {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return txFailure{}, false
	}
	f := txFailure{failed: map[int]bool{}}
	for i, reason := range tce.CancellationReasons {
		switch aws.ToString(reason.Code) {
		case "ConditionalCheckFailed":
			f.failed[i] = true
		case "TransactionConflict":
			f.conflict = true
		}
	}
	return f, true
}

// transactWrite commits items, retrying with exponential backoff while the
// transaction is cancelled by a conflicting one. classify turns any other
// cancellation into the caller's sentinel.
func transactWrite(ctx context.Context, ddb DynamoDBAPI, items []types.TransactWriteItem, classify func(txFailure) error) error {
	op := func() (struct{}, error) {
		_, err := ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
		if err == nil {
			return struct{}{}, nil
		}
		f, ok := inspectTx(err)
		if !ok {
			return struct{}{}, backoff.Permanent(err)
		}
		if len(f.failed) > 0 {
			if mapped := classify(f); mapped != nil {
				return struct{}{}, backoff.Permanent(mapped)
			}
			return struct{}{}, backoff.Permanent(err)
		}
		if f.conflict {
			return struct{}{}, err
		}
		return struct{}{}, backoff.Permanent(err)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 20 * time.Millisecond
	bo.MaxInterval = 500 * time.Millisecond
	_, err := backoff.Retry(ctx, op, backoff.WithBackOff(bo), backoff.WithMaxTries(txMaxTries))
	if err != nil {
		if _, ok := inspectTx(err); ok {
			return fmt.Errorf("dynamodb transaction cancelled: %w", err)
		}
	}
	return err
}

func chunkStrings(ids []string, size int) [][]string {
	var out [][]string
	for len(ids) > size {
		out = append(out, ids[:size])
		ids = ids[size:]
	}
	if len(ids) > 0 {
		out = append(out, ids)
	}
	return out
}

// batchGet loads items by id from one table, following UnprocessedKeys.
func batchGet(ctx context.Context, ddb DynamoDBAPI, table string, ids []string) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for _, chunk := range chunkStrings(ids, batchGetLimit) {
		keys := make([]map[string]types.AttributeValue, 0, len(chunk))
		for _, id := range chunk {
			keys = append(keys, idKey(id))
		}
		req := map[string]types.KeysAndAttributes{table: {Keys: keys, ConsistentRead: aws.Bool(true)}}
		for len(req) > 0 {
			out, err := ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: req})
			if err != nil {
				return nil, err
			}
			items = append(items, out.Responses[table]...)
			req = out.UnprocessedKeys
		}
	}
	return items, nil
}

// queryAll drains a Query across every page.
func queryAll(ctx context.Context, ddb DynamoDBAPI, in *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	paginator := dynamodb.NewQueryPaginator(ddb, in)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

func queryIndex(ctx context.Context, ddb DynamoDBAPI, table, index, attr, value string) ([]map[string]types.AttributeValue, error) {
	return queryAll(ctx, ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    aws.String("#k = :v"),
		ExpressionAttributeNames:  map[string]string{"#k": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: value}},
	})
}

func getItem(ctx context.Context, ddb DynamoDBAPI, table string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return out.Item, nil
}
