package records

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/convox/cloudtrailer/pkg/compress"
	"github.com/convox/cloudtrailer/pkg/structs"
	"github.com/convox/logger"
)

var Logger = logger.New("ns=records")

// Decoder turns the raw contents of a log file, compressed or not, into a
// RecordSet
type Decoder struct {
	// LogRecords logs the decompressed document
	LogRecords bool
}

func (d Decoder) Decode(data []byte) (*structs.RecordSet, error) {
	log := Logger.At("Decode")

	gzipped := compress.LooksGzipped(data)

	log.Logf("gzipped=%t", gzipped)

	if gzipped {
		out, err := compress.Decompress(data)
		if err != nil {
			return nil, log.Error(err)
		}
		data = out
	}

	if d.LogRecords {
		log.Logf("records=%q", data)
	}

	return Parse(data)
}

// Parse decodes a CloudTrail log document
func Parse(data []byte) (*structs.RecordSet, error) {
	if !utf8.Valid(data) {
		return nil, structs.Errorf(structs.MalformedRecordSet, "invalid utf-8")
	}

	var doc struct {
		Records *[]structs.Record `json:"Records"`
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, structs.NewError(structs.MalformedRecordSet, err)
	}

	if doc.Records == nil {
		return nil, structs.NewError(structs.MalformedRecordSet, fmt.Errorf("missing Records"))
	}

	return &structs.RecordSet{Records: *doc.Records}, nil
}
