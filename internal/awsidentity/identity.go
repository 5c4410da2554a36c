package awsidentity

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Identity is what the ambient AWS credentials say about the caller.
type Identity struct {
	Account string
	Region  string
}

type Resolver interface {
	Resolve(ctx context.Context) (Identity, error)
}

type callerIdentityAPI interface {
	GetCallerIdentity(ctx context.Context, in *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// STSResolver asks STS who the default credential chain belongs to.
type STSResolver struct {
	loadConfig func(ctx context.Context) (aws.Config, error)
	newClient  func(cfg aws.Config) callerIdentityAPI
}

func NewSTSResolver() *STSResolver {
	return &STSResolver{
		loadConfig: func(ctx context.Context) (aws.Config, error) {
			return config.LoadDefaultConfig(ctx)
		},
		newClient: func(cfg aws.Config) callerIdentityAPI {
			return sts.NewFromConfig(cfg)
		},
	}
}

func (r *STSResolver) Resolve(ctx context.Context) (Identity, error) {
	cfg, err := r.loadConfig(ctx)
	if err != nil {
		return Identity{}, err
	}

	out, err := r.newClient(cfg).GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return Identity{Region: cfg.Region}, err
	}
	return Identity{
		Account: aws.ToString(out.Account),
		Region:  cfg.Region,
	}, nil
}

// Static is a Resolver that always returns the same answer.
type Static struct {
	Identity Identity
	Err      error
}

func (s Static) Resolve(context.Context) (Identity, error) {
	return s.Identity, s.Err
}
