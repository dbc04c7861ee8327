package alert

import (
	"context"
	"fmt"

	"github.com/convox/cloudtrailer/pkg/structs"
	"github.com/convox/logger"
)

var Logger = logger.New("ns=alert")

// Placeholder stands in for a request parameter the matched record does not carry
const Placeholder = "unknown"

// Publisher delivers an alert to a topic
type Publisher interface {
	Publish(ctx context.Context, topic, subject, message string) error
}

// Sink receives a copy of every alert after it has been published. A sink
// failure is logged and does not fail the dispatch. Flush is called at the end
// of every invocation and must not return before sent alerts are delivered.
type Sink interface {
	Send(a structs.Alert) error
	Flush() error
}

// Dispatcher publishes an alert for every record with a matching event name
type Dispatcher struct {
	Publisher Publisher
	Sinks     []Sink

	Event     string
	Parameter string
	Subject   string
}

// Match returns true if the record should raise an alert
func (d *Dispatcher) Match(r structs.Record) bool {
	return r.EventName == d.Event
}

// Alert builds the alert for a matched record
func (d *Dispatcher) Alert(r structs.Record, topic string) structs.Alert {
	value, ok := r.Parameter(d.Parameter)
	if !ok {
		value = Placeholder
	}

	return structs.Alert{
		Topic:   topic,
		Subject: d.Subject,
		Message: fmt.Sprintf("You have a super cool event \n %s for user %s", r.EventName, value),
		Event:   r.EventName,
		Record:  r,
	}
}

// Dispatch publishes alerts for matching records in order and returns how
// many were published. The first publish failure stops the dispatch.
func (d *Dispatcher) Dispatch(ctx context.Context, records []structs.Record, topic string) (int, error) {
	log := Logger.At("Dispatch").Namespace("topic=%q event=%q", topic, d.Event).Start()

	sent := 0

	for _, r := range records {
		if !d.Match(r) {
			continue
		}

		a := d.Alert(r, topic)

		log.Logf("state=match event=%q", r.EventName)

		if err := d.Publisher.Publish(ctx, a.Topic, a.Subject, a.Message); err != nil {
			if !structs.ErrorIs(err, structs.PublishError) {
				err = structs.NewError(structs.PublishError, err)
			}
			return sent, log.Error(err)
		}

		sent++

		for _, s := range d.Sinks {
			if err := s.Send(a); err != nil {
				log.Logf("state=warning sink=%T error=%q", s, err)
			}
		}
	}

	log.Successf("records=%d alerts=%d", len(records), sent)

	return sent, nil
}

// Flush drains every sink. Failures are logged.
func (d *Dispatcher) Flush() {
	log := Logger.At("Flush")

	for _, s := range d.Sinks {
		if err := s.Flush(); err != nil {
			log.Logf("state=warning sink=%T error=%q", s, err)
		}
	}
}
