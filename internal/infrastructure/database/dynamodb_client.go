package database

import (
	"context"

	"repairdesk/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog/log"
)

// NewDynamoDBClient builds a DynamoDB client from the service configuration.
//
// Static credentials are always set: DynamoDB Local ignores them but the SDK
// refuses to sign without some. When DYNAMODB_ENDPOINT is set every request
// goes there instead of the regional endpoint.
func NewDynamoDBClient(ctx context.Context, cfg config.Config) (*dynamodb.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, err
	}

	endpoint := cfg.DynamoDBEndpoint
	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	log.Info().
		Str("region", cfg.AWSRegion).
		Str("endpoint", endpoint).
		Msg("[database] dynamodb client ready")
	return client, nil
}
