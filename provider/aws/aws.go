package aws

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/aws/aws-sdk-go/service/sns/snsiface"
	"github.com/convox/logger"
	"github.com/pkg/errors"
)

var Logger = logger.New("ns=aws")

// Provider talks to the two AWS services the pipeline needs: S3 for log
// files and SNS for alerts.
type Provider struct {
	Region   string
	Endpoint string
	Access   string
	Secret   string
	Token    string
	Debug    bool

	S3  s3iface.S3API
	SNS snsiface.SNSAPI
}

// Initialize builds any clients that have not been injected. Empty
// credentials fall back to the default chain (the function's execution role).
func (p *Provider) Initialize() error {
	s, err := session.NewSession(p.config())
	if err != nil {
		return errors.WithStack(err)
	}

	if p.S3 == nil {
		p.S3 = s3.New(s, &aws.Config{S3ForcePathStyle: aws.Bool(p.Endpoint != "")})
	}

	if p.SNS == nil {
		p.SNS = sns.New(s)
	}

	return nil
}

func (p *Provider) config() *aws.Config {
	config := &aws.Config{}

	if p.Access != "" {
		config.Credentials = credentials.NewStaticCredentials(p.Access, p.Secret, p.Token)
	}

	if p.Region != "" {
		config.Region = aws.String(p.Region)
	}

	if p.Endpoint != "" {
		config.Endpoint = aws.String(p.Endpoint)
	}

	if p.Debug {
		config.WithLogLevel(aws.LogDebugWithHTTPBody)
	}

	return config
}
