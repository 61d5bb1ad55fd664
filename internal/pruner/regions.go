// Where: internal/pruner/regions.go
// What: Region discovery for account-wide scans.
// Why: Default to every enabled region without hardcoding the account's footprint.
package pruner

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// regionsSDK is the single EC2 call region discovery needs.
type regionsSDK interface {
	DescribeRegions(ctx context.Context, params *ec2.DescribeRegionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error)
}

// defaultRegionList covers the commercial partition for accounts that cannot
// call DescribeRegions. Kept sorted.
var defaultRegionList = []string{
	"af-south-1",
	"ap-east-1",
	"ap-northeast-1",
	"ap-northeast-2",
	"ap-northeast-3",
	"ap-south-1",
	"ap-south-2",
	"ap-southeast-1",
	"ap-southeast-2",
	"ap-southeast-3",
	"ap-southeast-4",
	"ca-central-1",
	"ca-west-1",
	"eu-central-1",
	"eu-central-2",
	"eu-north-1",
	"eu-south-1",
	"eu-south-2",
	"eu-west-1",
	"eu-west-2",
	"eu-west-3",
	"il-central-1",
	"me-central-1",
	"me-south-1",
	"sa-east-1",
	"us-east-1",
	"us-east-2",
	"us-west-1",
	"us-west-2",
}

// DefaultRegions returns the built-in region list.
func DefaultRegions() []string {
	out := make([]string, len(defaultRegionList))
	copy(out, defaultRegionList)
	return out
}

// describeRegions asks EC2 for the regions enabled on the account, sorted
// for stable scan order.
func describeRegions(ctx context.Context, client regionsSDK) ([]string, error) {
	resp, err := client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{
		AllRegions: aws.Bool(false),
	})
	if err != nil {
		return nil, classify("describe regions", err)
	}

	regions := make([]string, 0, len(resp.Regions))
	for _, region := range resp.Regions {
		name := aws.ToString(region.RegionName)
		if name == "" {
			continue
		}
		regions = append(regions, name)
	}
	sort.Strings(regions)
	return regions, nil
}
