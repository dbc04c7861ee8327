package alert

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/convox/cloudtrailer/pkg/structs"
	analytics "github.com/segmentio/analytics-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSyslog struct {
	lines []string
	err   error
}

func (w *testSyslog) Warning(m string) error {
	w.lines = append(w.lines, m)
	return w.err
}

type testSegment struct {
	tracks []*analytics.Track
	closed bool
}

func (c *testSegment) Track(t *analytics.Track) error {
	c.tracks = append(c.tracks, t)
	return nil
}

func (c *testSegment) Close() error {
	c.closed = true
	return nil
}

var testAlert = structs.Alert{
	Topic:   "arn:aws:sns:us-test-1:123456789012:alerts",
	Subject: "Super cool event ALERT",
	Message: "You have a super cool event \n CreateUser for user alice",
	Event:   "CreateUser",
	Record: structs.Record{
		EventName:       "CreateUser",
		EventSource:     "iam.amazonaws.com",
		AwsRegion:       "us-east-1",
		SourceIPAddress: "203.0.113.10",
		UserIdentity:    structs.UserIdentity{Arn: "arn:aws:iam::123456789012:user/admin"},
	},
}

func TestSyslogSink(t *testing.T) {
	w := &testSyslog{}
	s := &SyslogSink{writer: w}

	require.NoError(t, s.Send(testAlert))
	require.NoError(t, s.Flush())

	assert.Equal(t, []string{
		`event=CreateUser source=iam.amazonaws.com region=us-east-1 ip=203.0.113.10 actor="arn:aws:iam::123456789012:user/admin" topic=arn:aws:sns:us-test-1:123456789012:alerts subject="Super cool event ALERT"`,
	}, w.lines)
}

func TestSyslogSinkError(t *testing.T) {
	s := &SyslogSink{writer: &testSyslog{err: fmt.Errorf("broken pipe")}}

	assert.EqualError(t, s.Send(testAlert), "broken pipe")
}

func TestSyslogSinkInvalidURL(t *testing.T) {
	_, err := NewSyslogSink("://bad")
	assert.Error(t, err)
}

func testSegmentSink() (*SegmentSink, *[]*testSegment) {
	clients := []*testSegment{}

	s := &SegmentSink{userId: "cloudtrailer"}
	s.newClient = func() segmentClient {
		c := &testSegment{}
		clients = append(clients, c)
		return c
	}

	return s, &clients
}

func TestSegmentSink(t *testing.T) {
	s, clients := testSegmentSink()

	require.NoError(t, s.Send(testAlert))
	require.NoError(t, s.Flush())

	require.Len(t, *clients, 1)

	c := (*clients)[0]

	require.Len(t, c.tracks, 1)
	assert.Equal(t, "Alert Sent", c.tracks[0].Event)
	assert.Equal(t, "cloudtrailer", c.tracks[0].UserId)
	assert.Equal(t, map[string]interface{}{
		"event":   "CreateUser",
		"region":  "us-east-1",
		"source":  "iam.amazonaws.com",
		"subject": "Super cool event ALERT",
		"topic":   "arn:aws:sns:us-test-1:123456789012:alerts",
	}, c.tracks[0].Properties)
	assert.True(t, c.closed)
}

func TestSegmentSinkNewClientAfterFlush(t *testing.T) {
	s, clients := testSegmentSink()

	require.NoError(t, s.Flush())
	assert.Len(t, *clients, 0)

	require.NoError(t, s.Send(testAlert))
	require.NoError(t, s.Send(testAlert))
	require.NoError(t, s.Flush())

	require.NoError(t, s.Send(testAlert))
	require.NoError(t, s.Flush())

	require.Len(t, *clients, 2)
	assert.Len(t, (*clients)[0].tracks, 2)
	assert.Len(t, (*clients)[1].tracks, 1)
	assert.True(t, (*clients)[0].closed)
	assert.True(t, (*clients)[1].closed)
}

func TestSegmentSinkDeliveredOnFlush(t *testing.T) {
	var mu sync.Mutex
	bodies := []string{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := ioutil.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, string(data))
		mu.Unlock()
	}))
	defer server.Close()

	s := NewSegmentSink("test-key", "cloudtrailer")
	s.Endpoint = server.URL

	require.NoError(t, s.Send(testAlert))
	require.NoError(t, s.Flush())

	mu.Lock()
	defer mu.Unlock()

	require.Len(t, bodies, 1)
	assert.Contains(t, bodies[0], `"Alert Sent"`)
	assert.Contains(t, bodies[0], `"CreateUser"`)
}
