package structs

import "fmt"

// RecordSet is the body of a CloudTrail log file.
type RecordSet struct {
	Records []Record `json:"Records"`
}

// Record is a single CloudTrail event.
type Record struct {
	EventName         string                 `json:"eventName"`
	EventSource       string                 `json:"eventSource,omitempty"`
	EventTime         string                 `json:"eventTime,omitempty"`
	AwsRegion         string                 `json:"awsRegion,omitempty"`
	SourceIPAddress   string                 `json:"sourceIPAddress,omitempty"`
	UserIdentity      UserIdentity           `json:"userIdentity"`
	RequestParameters map[string]interface{} `json:"requestParameters,omitempty"`
}

type UserIdentity struct {
	Type      string `json:"type,omitempty"`
	Arn       string `json:"arn,omitempty"`
	AccountId string `json:"accountId,omitempty"`
	UserName  string `json:"userName,omitempty"`
}

// Parameter looks up a request parameter. Each event type carries its own set
// of parameters so a missing key is reported with ok=false rather than an error.
func (r Record) Parameter(name string) (string, bool) {
	v, ok := r.RequestParameters[name]
	if !ok || v == nil {
		return "", false
	}

	if s, ok := v.(string); ok {
		return s, true
	}

	return fmt.Sprint(v), true
}
