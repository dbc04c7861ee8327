package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/convox/cloudtrailer/pkg/alert"
	"github.com/convox/cloudtrailer/pkg/config"
	"github.com/convox/cloudtrailer/pkg/helpers"
	"github.com/convox/cloudtrailer/pkg/pipeline"
	"github.com/convox/cloudtrailer/provider/aws"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	c, err := config.Load()
	if err != nil {
		return err
	}

	helpers.RollbarConfigure(c.RollbarToken, lambdacontext.FunctionName)

	p := &aws.Provider{
		Region:   c.Region,
		Endpoint: c.Endpoint,
		Debug:    c.Debug,
	}

	if err := p.Initialize(); err != nil {
		return err
	}

	sinks := []alert.Sink{}

	if c.SyslogURL != "" {
		s, err := alert.NewSyslogSink(c.SyslogURL)
		if err != nil {
			return err
		}

		sinks = append(sinks, s)
	}

	if c.SegmentWriteKey != "" {
		sinks = append(sinks, alert.NewSegmentSink(c.SegmentWriteKey, lambdacontext.FunctionName))
	}

	pl, err := pipeline.New(c, p, p, sinks...)
	if err != nil {
		return err
	}

	lambda.Start(pl.Handle)

	return nil
}
