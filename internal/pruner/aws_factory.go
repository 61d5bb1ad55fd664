// Where: internal/pruner/aws_factory.go
// What: AWS client factory for Lambda pruning and region discovery.
// Why: Encapsulate SDK configuration for explicit tokens, profiles, and endpoint overrides.
package pruner

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/lambda"

	"github.com/epsagon/clear-lambda-storage/internal/config"
)

// Region discovery has to start somewhere before any region is known.
const regionDiscoveryRegion = "us-east-1"

type ClientFactory interface {
	Lambda(ctx context.Context, region string, settings config.Settings) (LambdaAPI, error)
	Regions(ctx context.Context, settings config.Settings) ([]string, error)
}

type awsClientFactory struct{}

func (awsClientFactory) Lambda(ctx context.Context, region string, settings config.Settings) (LambdaAPI, error) {
	cfg, err := loadAWSConfig(ctx, region, settings)
	if err != nil {
		return nil, &AuthenticationError{Op: "load aws config", Cause: err}
	}
	client := lambda.NewFromConfig(cfg, func(options *lambda.Options) {
		if settings.EndpointURL != "" {
			options.BaseEndpoint = aws.String(settings.EndpointURL)
		}
	})
	return awsLambdaClient{client: client}, nil
}

func (awsClientFactory) Regions(ctx context.Context, settings config.Settings) ([]string, error) {
	cfg, err := loadAWSConfig(ctx, regionDiscoveryRegion, settings)
	if err != nil {
		return nil, &AuthenticationError{Op: "load aws config", Cause: err}
	}
	client := ec2.NewFromConfig(cfg, func(options *ec2.Options) {
		if settings.EndpointURL != "" {
			options.BaseEndpoint = aws.String(settings.EndpointURL)
		}
	})
	return describeRegions(ctx, client)
}

func loadAWSConfig(
	ctx context.Context,
	region string,
	settings config.Settings,
) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	switch {
	case settings.AccessKeyID != "" && settings.SecretAccessKey != "":
		creds := credentials.NewStaticCredentialsProvider(settings.AccessKeyID, settings.SecretAccessKey, "")
		opts = append(opts, awsconfig.WithCredentialsProvider(creds))
	case settings.Profile != "":
		opts = append(opts, awsconfig.WithSharedConfigProfile(settings.Profile))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, err
	}
	return cfg, nil
}
