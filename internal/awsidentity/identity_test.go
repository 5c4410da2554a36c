package awsidentity

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSTS struct {
	out *sts.GetCallerIdentityOutput
	err error
}

func (f fakeSTS) GetCallerIdentity(context.Context, *sts.GetCallerIdentityInput, ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	return f.out, f.err
}

func resolver(cfgErr error, api fakeSTS) *STSResolver {
	return &STSResolver{
		loadConfig: func(context.Context) (aws.Config, error) {
			return aws.Config{Region: "us-west-2"}, cfgErr
		},
		newClient: func(aws.Config) callerIdentityAPI { return api },
	}
}

func TestSTSResolver(t *testing.T) {
	r := resolver(nil, fakeSTS{out: &sts.GetCallerIdentityOutput{Account: aws.String("123456789012")}})

	id, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Identity{Account: "123456789012", Region: "us-west-2"}, id)
}

func TestSTSResolver_CallFailsKeepsRegion(t *testing.T) {
	r := resolver(nil, fakeSTS{err: errors.New("no credentials")})

	id, err := r.Resolve(context.Background())
	assert.Error(t, err)
	assert.Equal(t, "us-west-2", id.Region)
	assert.Empty(t, id.Account)
}

func TestSTSResolver_ConfigFails(t *testing.T) {
	r := resolver(errors.New("bad profile"), fakeSTS{})

	_, err := r.Resolve(context.Background())
	assert.ErrorContains(t, err, "bad profile")
}
