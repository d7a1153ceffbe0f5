package paramstore

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// SSMOptions configures an SSMStore.
type SSMOptions struct {
	Region         string
	EndpointURL    string
	Recursive      bool
	WithDecryption bool
}

// SSMStore reads parameters from AWS Systems Manager Parameter Store.
type SSMStore struct {
	client         ssm.GetParametersByPathAPIClient
	recursive      bool
	withDecryption bool
}

// NewSSMStore builds a store from the default AWS credential chain.
func NewSSMStore(ctx context.Context, opts SSMOptions) (*SSMStore, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("error in loading AWS configuration: %w", err)
	}
	client := ssm.NewFromConfig(cfg, func(o *ssm.Options) {
		if opts.EndpointURL != "" {
			o.BaseEndpoint = aws.String(opts.EndpointURL)
		}
	})
	return NewSSMStoreFromClient(client, opts), nil
}

// NewSSMStoreFromClient wraps an existing client. Region and EndpointURL in
// opts are ignored.
func NewSSMStoreFromClient(client ssm.GetParametersByPathAPIClient, opts SSMOptions) *SSMStore {
	return &SSMStore{
		client:         client,
		recursive:      opts.Recursive,
		withDecryption: opts.WithDecryption,
	}
}

// Parameters returns every parameter under path, following pagination.
func (s *SSMStore) Parameters(ctx context.Context, path string) ([]Parameter, error) {
	pages := ssm.NewGetParametersByPathPaginator(s.client, &ssm.GetParametersByPathInput{
		Path:           aws.String(path),
		Recursive:      aws.Bool(s.recursive),
		WithDecryption: aws.Bool(s.withDecryption),
	})
	var out []Parameter
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, p := range page.Parameters {
			rel, ok := relativeName(path, aws.ToString(p.Name), s.recursive)
			if !ok {
				continue
			}
			out = append(out, Parameter{Name: rel, Value: aws.ToString(p.Value)})
		}
	}
	sortParameters(out)
	return out, nil
}
