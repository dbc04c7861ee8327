package pipeline

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/convox/cloudtrailer/pkg/alert"
	"github.com/convox/cloudtrailer/pkg/config"
	"github.com/convox/cloudtrailer/pkg/helpers"
	"github.com/convox/cloudtrailer/pkg/notification"
	"github.com/convox/cloudtrailer/pkg/records"
	"github.com/convox/logger"
	"github.com/gobwas/glob"
)

var Logger = logger.New("ns=pipeline")

// ObjectStore fetches log files
type ObjectStore interface {
	ObjectFetch(ctx context.Context, bucket, key string) ([]byte, error)
}

// Pipeline processes a single log file per invocation: the first key of the
// first message in the notification. Further messages and keys are logged
// and dropped.
type Pipeline struct {
	Config     config.Config
	Objects    ObjectStore
	Dispatcher *alert.Dispatcher

	decoder records.Decoder
	ignore  []glob.Glob
}

// Result describes a completed invocation
type Result struct {
	Bucket  string
	Key     string
	Ignored bool
	Records int
	Alerts  int
}

func (r Result) String() string {
	return fmt.Sprintf("bucket=%s key=%s ignored=%t records=%d alerts=%d", r.Bucket, r.Key, r.Ignored, r.Records, r.Alerts)
}

// New returns a Pipeline using objects for S3 access and publisher for SNS
func New(c config.Config, objects ObjectStore, publisher alert.Publisher, sinks ...alert.Sink) (*Pipeline, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ignore, err := c.IgnoreMatchers()
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		Config:  c,
		Objects: objects,
		Dispatcher: &alert.Dispatcher{
			Publisher: publisher,
			Sinks:     sinks,
			Event:     c.AlertEvent,
			Parameter: c.AlertParameter,
			Subject:   c.AlertSubject,
		},
		decoder: records.Decoder{LogRecords: c.LogRecords},
		ignore:  ignore,
	}

	return p, nil
}

// Handle is the lambda entrypoint
func (p *Pipeline) Handle(ctx context.Context, e events.SNSEvent) (string, error) {
	log := Logger.At("Handle")

	if lc, ok := lambdacontext.FromContext(ctx); ok {
		log = log.Namespace("request=%s", lc.AwsRequestID)
	}

	log = log.Start()

	body, ignored, err := notification.FirstMessage(e)
	if err != nil {
		helpers.Error(log, err)
		return "", err
	}

	if ignored > 0 {
		log.Logf("state=warning messages=%d processed=1 msg=%q", ignored+1, "only the first message of a notification is processed")
	}

	res, err := p.Process(ctx, body)

	// alerts published before a failure still reach the sinks
	p.Dispatcher.Flush()

	if err != nil {
		helpers.Error(log, err)
		return "", err
	}

	log.Successf("%s", res)

	return res.String(), nil
}

// Process runs a single notification message through the pipeline
func (p *Pipeline) Process(ctx context.Context, body string) (*Result, error) {
	log := Logger.At("Process").Start()

	loc, err := notification.Decode(body)
	if err != nil {
		return nil, err
	}

	res := &Result{Bucket: loc.Bucket, Key: loc.Key()}

	log = log.Namespace("bucket=%q key=%q", res.Bucket, res.Key)

	if n := loc.Skipped(); n > 0 {
		log.Logf("state=warning keys=%d processed=1 msg=%q", n+1, "only the first object key is processed")
	}

	if p.ignored(res.Key) {
		res.Ignored = true
		log.Successf("ignored=true")
		return res, nil
	}

	data, err := p.Objects.ObjectFetch(ctx, res.Bucket, res.Key)
	if err != nil {
		return nil, err
	}

	rs, err := p.decoder.Decode(data)
	if err != nil {
		return nil, err
	}

	res.Records = len(rs.Records)

	n, err := p.Dispatcher.Dispatch(ctx, rs.Records, p.Config.CreateUserTopicArn)
	res.Alerts = n
	if err != nil {
		return nil, err
	}

	log.Successf("records=%d alerts=%d", res.Records, res.Alerts)

	return res, nil
}

func (p *Pipeline) ignored(key string) bool {
	for _, g := range p.ignore {
		if g.Match(key) {
			return true
		}
	}

	return false
}
