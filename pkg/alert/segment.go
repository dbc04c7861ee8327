package alert

import (
	"github.com/convox/cloudtrailer/pkg/structs"
	analytics "github.com/segmentio/analytics-go"
)

type segmentClient interface {
	Track(t *analytics.Track) error
	Close() error
}

// SegmentSink records each alert as a Segment track event. Tracks are queued
// by the client and only delivered once Flush closes it, so Flush must run
// before an invocation returns.
type SegmentSink struct {
	// Endpoint overrides the Segment API endpoint
	Endpoint string

	client    segmentClient
	newClient func() segmentClient
	userId    string
}

func NewSegmentSink(writeKey, userId string) *SegmentSink {
	s := &SegmentSink{userId: userId}

	s.newClient = func() segmentClient {
		c := analytics.New(writeKey)
		if s.Endpoint != "" {
			c.Endpoint = s.Endpoint
		}
		return c
	}

	return s
}

func (s *SegmentSink) Send(a structs.Alert) error {
	if s.client == nil {
		s.client = s.newClient()
	}

	return s.client.Track(&analytics.Track{
		Event:  "Alert Sent",
		UserId: s.userId,
		Properties: map[string]interface{}{
			"event":   a.Event,
			"region":  a.Record.AwsRegion,
			"source":  a.Record.EventSource,
			"subject": a.Subject,
			"topic":   a.Topic,
		},
	})
}

// Flush delivers queued tracks. A closed client cannot be reused so the next
// Send starts a new one.
func (s *SegmentSink) Flush() error {
	if s.client == nil {
		return nil
	}

	c := s.client
	s.client = nil

	return c.Close()
}
