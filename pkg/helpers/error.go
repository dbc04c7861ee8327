package helpers

import (
	"os"

	"github.com/convox/logger"
	"github.com/stvp/rollbar"
)

// RollbarConfigure enables error reporting when a token is present
func RollbarConfigure(token, environment string) {
	rollbar.Token = token

	if environment != "" {
		rollbar.Environment = environment
	}
}

// Error logs err and reports it to rollbar when configured
func Error(log *logger.Logger, err error) {
	if log != nil {
		log.Error(err)
	}

	if rollbar.Token != "" {
		extraData := map[string]string{
			"AWS_REGION":               os.Getenv("AWS_REGION"),
			"AWS_LAMBDA_FUNCTION_NAME": os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		}
		extraField := &rollbar.Field{Name: "env", Data: extraData}
		rollbar.Error(rollbar.ERR, err, extraField)
		rollbar.Wait()
	}
}
