package structs

// ObjectLocation is the message CloudTrail publishes to SNS after it delivers
// a log file to S3.
type ObjectLocation struct {
	Bucket string   `json:"s3Bucket"`
	Keys   []string `json:"s3ObjectKey"`
}

// Key returns the only key an invocation processes: the first one.
func (l ObjectLocation) Key() string {
	if len(l.Keys) == 0 {
		return ""
	}

	return l.Keys[0]
}

// Skipped is the number of keys after the first that are not processed.
func (l ObjectLocation) Skipped() int {
	if len(l.Keys) < 2 {
		return 0
	}

	return len(l.Keys) - 1
}
