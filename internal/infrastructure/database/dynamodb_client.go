package database

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/mm01rahman/LandlordBD/internal/adapter/persistence/repository"
	"github.com/mm01rahman/LandlordBD/internal/config"
)

// ConnectDynamoDB creates a DynamoDB client. A non-empty endpoint points the
// client at DynamoDB Local; static credentials are always supplied because the
// local emulator does not validate them but the SDK requires some.
func ConnectDynamoDB(ctx context.Context, flags config.DynamoDBFlags) (*dynamodb.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(flags.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			flags.AccessKeyID,
			flags.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, err
	}

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if flags.Endpoint != "" {
			o.BaseEndpoint = aws.String(flags.Endpoint)
		}
	}), nil
}

// DynamoTables maps the configured table names onto the repository layout.
func DynamoTables(flags config.DynamoDBFlags) repository.DynamoTables {
	return repository.DynamoTables{
		Agreements:  flags.AgreementsTable,
		Payments:    flags.PaymentsTable,
		Buildings:   flags.BuildingsTable,
		Units:       flags.UnitsTable,
		Tenants:     flags.TenantsTable,
		Constraints: flags.ConstraintsTable,
	}
}
