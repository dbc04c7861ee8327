package alert

import (
	"fmt"
	"net/url"

	syslog "github.com/RackSec/srslog"
	"github.com/convox/cloudtrailer/pkg/structs"
	"github.com/pkg/errors"
)

const syslogTag = "convox/cloudtrailer"

type syslogWriter interface {
	Warning(m string) error
}

// SyslogSink mirrors alerts to a syslog endpoint such as
// tcp+tls://logs.example.org:514. The connection lives as long as the process.
type SyslogSink struct {
	writer syslogWriter
}

// NewSyslogSink dials the syslog endpoint described by rawurl
func NewSyslogSink(rawurl string) (*SyslogSink, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	w, err := syslog.Dial(u.Scheme, u.Host, syslog.LOG_WARNING|syslog.LOG_AUTH, syslogTag)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	w.SetFormatter(syslog.RFC5424Formatter)

	return &SyslogSink{writer: w}, nil
}

func (s *SyslogSink) Send(a structs.Alert) error {
	return s.writer.Warning(syslogLine(a))
}

// Flush is a no-op, syslog lines are written synchronously
func (s *SyslogSink) Flush() error {
	return nil
}

func syslogLine(a structs.Alert) string {
	r := a.Record

	return fmt.Sprintf("event=%s source=%s region=%s ip=%s actor=%q topic=%s subject=%q",
		a.Event, r.EventSource, r.AwsRegion, r.SourceIPAddress, r.UserIdentity.Arn, a.Topic, a.Subject)
}
