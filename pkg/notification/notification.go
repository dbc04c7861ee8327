package notification

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/convox/cloudtrailer/pkg/structs"
)

// FirstMessage returns the body of the first message in an SNS event and the
// number of further messages that will be ignored.
func FirstMessage(e events.SNSEvent) (string, int, error) {
	if len(e.Records) == 0 {
		return "", 0, structs.Errorf(structs.MalformedNotification, "no records in event")
	}

	return e.Records[0].SNS.Message, len(e.Records) - 1, nil
}

// Decode parses a CloudTrail delivery notification
func Decode(body string) (*structs.ObjectLocation, error) {
	var l structs.ObjectLocation

	if err := json.Unmarshal([]byte(body), &l); err != nil {
		return nil, structs.NewError(structs.MalformedNotification, err)
	}

	if l.Bucket == "" {
		return nil, structs.Errorf(structs.MalformedNotification, "missing s3Bucket")
	}

	if l.Key() == "" {
		return nil, structs.Errorf(structs.MalformedNotification, "missing s3ObjectKey")
	}

	return &l, nil
}
