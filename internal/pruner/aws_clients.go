// Where: internal/pruner/aws_clients.go
// What: AWS SDK adapter for the Lambda control plane.
// Why: Map paginated SDK responses to internal pruner types.
package pruner

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

const latestQualifier = "$LATEST"

// lambdaSDK is the generated client surface the adapter drives. The
// paginator interfaces keep it fakeable in tests.
type lambdaSDK interface {
	lambda.ListFunctionsAPIClient
	lambda.ListVersionsByFunctionAPIClient
	lambda.ListAliasesAPIClient
	DeleteFunction(ctx context.Context, params *lambda.DeleteFunctionInput, optFns ...func(*lambda.Options)) (*lambda.DeleteFunctionOutput, error)
}

type awsLambdaClient struct {
	client lambdaSDK
}

func (c awsLambdaClient) ListFunctions(ctx context.Context) ([]FunctionSummary, error) {
	if c.client == nil {
		return nil, fmt.Errorf("lambda client is nil")
	}

	var out []FunctionSummary
	paginator := lambda.NewListFunctionsPaginator(c.client, &lambda.ListFunctionsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, classify("list functions", err)
		}
		for _, fn := range page.Functions {
			out = append(out, FunctionSummary{Name: aws.ToString(fn.FunctionName)})
		}
	}
	return out, nil
}

// ListVersions returns the function's published versions ascending by
// version number. $LATEST and any non-numeric qualifier are dropped here so
// the planner only ever sees deletable snapshots.
func (c awsLambdaClient) ListVersions(ctx context.Context, functionName string) ([]Version, error) {
	if c.client == nil {
		return nil, fmt.Errorf("lambda client is nil")
	}

	var out []Version
	paginator := lambda.NewListVersionsByFunctionPaginator(c.client, &lambda.ListVersionsByFunctionInput{
		FunctionName: aws.String(functionName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			if isFunctionNotFound(err) {
				return nil, &FunctionNotFoundError{FunctionName: functionName, Cause: err}
			}
			return nil, classify("list versions", err)
		}
		for _, v := range page.Versions {
			qualifier := aws.ToString(v.Version)
			if qualifier == "" || qualifier == latestQualifier {
				continue
			}
			number, err := strconv.ParseInt(qualifier, 10, 64)
			if err != nil {
				continue
			}
			out = append(out, Version{
				Qualifier: qualifier,
				Number:    number,
				CodeSize:  v.CodeSize,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

// ListAliasedVersions returns every version qualifier an alias points at,
// including the secondary versions of weighted routing configurations.
func (c awsLambdaClient) ListAliasedVersions(ctx context.Context, functionName string) (map[string]struct{}, error) {
	if c.client == nil {
		return nil, fmt.Errorf("lambda client is nil")
	}

	aliased := map[string]struct{}{}
	paginator := lambda.NewListAliasesPaginator(c.client, &lambda.ListAliasesInput{
		FunctionName: aws.String(functionName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			if isFunctionNotFound(err) {
				return nil, &FunctionNotFoundError{FunctionName: functionName, Cause: err}
			}
			return nil, classify("list aliases", err)
		}
		for _, alias := range page.Aliases {
			if target := aws.ToString(alias.FunctionVersion); target != "" {
				aliased[target] = struct{}{}
			}
			if alias.RoutingConfig == nil {
				continue
			}
			for qualifier := range alias.RoutingConfig.AdditionalVersionWeights {
				aliased[qualifier] = struct{}{}
			}
		}
	}
	return aliased, nil
}

// DeleteVersion deletes one published version. A version that is already
// gone counts as deleted.
func (c awsLambdaClient) DeleteVersion(ctx context.Context, functionName, qualifier string) error {
	if c.client == nil {
		return fmt.Errorf("lambda client is nil")
	}

	_, err := c.client.DeleteFunction(ctx, &lambda.DeleteFunctionInput{
		FunctionName: aws.String(functionName),
		Qualifier:    aws.String(qualifier),
	})
	if err == nil || isFunctionNotFound(err) {
		return nil
	}
	return &DeletionError{FunctionName: functionName, Qualifier: qualifier, Cause: err}
}

func isFunctionNotFound(err error) bool {
	var notFound *types.ResourceNotFoundException
	return errors.As(err, &notFound)
}
