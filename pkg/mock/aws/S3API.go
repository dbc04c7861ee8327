package aws

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/mock"
)

// S3API is a mock for the subset of s3iface.S3API the provider calls.
// Calling any other method panics.
type S3API struct {
	mock.Mock
	s3iface.S3API
}

// GetObjectWithContext provides a mock function with given fields: ctx, input, opts
func (_m *S3API) GetObjectWithContext(ctx aws.Context, input *s3.GetObjectInput, opts ...request.Option) (*s3.GetObjectOutput, error) {
	ret := _m.Called(ctx, input)

	var r0 *s3.GetObjectOutput
	if rf, ok := ret.Get(0).(func(aws.Context, *s3.GetObjectInput) *s3.GetObjectOutput); ok {
		r0 = rf(ctx, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*s3.GetObjectOutput)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(aws.Context, *s3.GetObjectInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
