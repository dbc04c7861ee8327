package aws

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/convox/cloudtrailer/pkg/structs"
)

// Publish sends a message to an SNS topic
func (p *Provider) Publish(ctx context.Context, topic, subject, message string) error {
	log := Logger.At("Publish").Namespace("topic=%q", topic).Start()

	res, err := p.SNS.PublishWithContext(ctx, &sns.PublishInput{
		Message:  aws.String(message),
		Subject:  aws.String(subject),
		TopicArn: aws.String(topic),
	})
	if err != nil {
		return log.Error(structs.NewError(structs.PublishError, err))
	}

	log.Successf("message=%q", aws.StringValue(res.MessageId))

	return nil
}
