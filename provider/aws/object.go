package aws

import (
	"bytes"
	"context"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/convox/cloudtrailer/pkg/structs"
	humanize "github.com/dustin/go-humanize"
)

// ObjectFetch reads an entire object into memory
func (p *Provider) ObjectFetch(ctx context.Context, bucket, key string) ([]byte, error) {
	log := Logger.At("ObjectFetch").Namespace("bucket=%q key=%q", bucket, key).Start()

	if bucket == "" || key == "" {
		return nil, log.Error(structs.Errorf(structs.RetrievalError, "bucket and key required"))
	}

	res, err := p.S3.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, log.Error(objectError(bucket, key, err))
	}
	defer res.Body.Close()

	var buf bytes.Buffer

	n, err := io.Copy(&buf, res.Body)
	if err != nil {
		return nil, log.Error(structs.NewError(structs.RetrievalError, err))
	}

	log.Successf("size=%q", humanize.Bytes(uint64(n)))

	return buf.Bytes(), nil
}
