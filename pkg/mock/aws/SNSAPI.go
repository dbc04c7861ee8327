package aws

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/aws/aws-sdk-go/service/sns/snsiface"
	"github.com/stretchr/testify/mock"
)

// SNSAPI is a mock for the subset of snsiface.SNSAPI the provider calls.
// Calling any other method panics.
type SNSAPI struct {
	mock.Mock
	snsiface.SNSAPI
}

// PublishWithContext provides a mock function with given fields: ctx, input, opts
func (_m *SNSAPI) PublishWithContext(ctx aws.Context, input *sns.PublishInput, opts ...request.Option) (*sns.PublishOutput, error) {
	ret := _m.Called(ctx, input)

	var r0 *sns.PublishOutput
	if rf, ok := ret.Get(0).(func(aws.Context, *sns.PublishInput) *sns.PublishOutput); ok {
		r0 = rf(ctx, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*sns.PublishOutput)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(aws.Context, *sns.PublishInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
