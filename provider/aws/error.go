package aws

import (
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/convox/cloudtrailer/pkg/structs"
)

// ErrorNotFound returns true if the error is a "not found" type
func ErrorNotFound(err error) bool {
	return structs.ErrorIs(err, structs.ObjectNotFound)
}

// objectError translates an S3 error into the pipeline taxonomy
func objectError(bucket, key string, err error) error {
	if ae, ok := err.(awserr.Error); ok {
		switch ae.Code() {
		case s3.ErrCodeNoSuchKey, s3.ErrCodeNoSuchBucket, "NotFound":
			return structs.Errorf(structs.ObjectNotFound, "no such object: %s/%s", bucket, key)
		}
	}

	return structs.NewError(structs.RetrievalError, err)
}
