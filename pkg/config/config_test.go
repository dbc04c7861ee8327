package config_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/convox/cloudtrailer/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	c, err := config.LoadEnv(env(nil))
	require.NoError(t, err)

	assert.Equal(t, config.Default(), c)
	assert.Equal(t, config.DefaultCreateUserTopicArn, c.CreateUserTopicArn)
	assert.Equal(t, "", c.AlertTopicArn)
	assert.Equal(t, "CreateUser", c.AlertEvent)
	assert.Equal(t, "userName", c.AlertParameter)
	assert.True(t, c.LogRecords)
}

func TestLoadEnvironment(t *testing.T) {
	c, err := config.LoadEnv(env(map[string]string{
		"AlertTopicArn":         "arn:aws:sns:us-east-1:123456789012:alerts",
		"CREATE_USER_TOPIC_ARN": "arn:aws:sns:us-east-1:123456789012:create-user",
		"ALERT_EVENT":           "DeleteUser",
		"IGNORE_KEYS":           " */CloudTrail-Digest/*/*/*/*/* , *.tmp,",
		"LOG_RECORDS":           "false",
		"DEBUG":                 "1",
		"AWS_REGION":            "us-east-1",
	}))
	require.NoError(t, err)

	assert.Equal(t, "arn:aws:sns:us-east-1:123456789012:alerts", c.AlertTopicArn)
	assert.Equal(t, "arn:aws:sns:us-east-1:123456789012:create-user", c.CreateUserTopicArn)
	assert.Equal(t, "DeleteUser", c.AlertEvent)
	assert.Equal(t, "userName", c.AlertParameter)
	assert.Equal(t, []string{"*/CloudTrail-Digest/*/*/*/*/*", "*.tmp"}, c.IgnoreKeys)
	assert.False(t, c.LogRecords)
	assert.True(t, c.Debug)
	assert.Equal(t, "us-east-1", c.Region)
}

func TestLoadDefaultRegion(t *testing.T) {
	c, err := config.LoadEnv(env(map[string]string{"AWS_DEFAULT_REGION": "eu-west-1"}))
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", c.Region)
}

func TestLoadInvalidBool(t *testing.T) {
	_, err := config.LoadEnv(env(map[string]string{"LOG_RECORDS": "maybe"}))
	assert.EqualError(t, err, `invalid LOG_RECORDS: strconv.ParseBool: parsing "maybe": invalid syntax`)
}

func TestLoadFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "config.yml")

	data := []byte(`
alertTopicArn: arn:aws:sns:us-east-1:123456789012:from-file
alertSubject: Account change
ignoreKeys:
  - "*.tmp"
logRecords: false
`)
	require.NoError(t, ioutil.WriteFile(path, data, 0644))

	c, err := config.LoadEnv(env(map[string]string{
		"CONFIG_FILE":   path,
		"AlertTopicArn": "arn:aws:sns:us-east-1:123456789012:from-env",
	}))
	require.NoError(t, err)

	assert.Equal(t, "arn:aws:sns:us-east-1:123456789012:from-env", c.AlertTopicArn)
	assert.Equal(t, "Account change", c.AlertSubject)
	assert.Equal(t, []string{"*.tmp"}, c.IgnoreKeys)
	assert.False(t, c.LogRecords)
	assert.Equal(t, config.DefaultCreateUserTopicArn, c.CreateUserTopicArn)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.LoadEnv(env(map[string]string{"CONFIG_FILE": "/nonexistent/config.yml"}))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	c := config.Default()
	c.CreateUserTopicArn = ""
	assert.EqualError(t, c.Validate(), "create user topic arn required")

	c = config.Default()
	c.AlertEvent = ""
	assert.EqualError(t, c.Validate(), "alert event required")
}

func TestIgnoreMatchers(t *testing.T) {
	c := config.Default()
	c.IgnoreKeys = []string{"AWSLogs/*/CloudTrail-Digest/**"}

	gs, err := c.IgnoreMatchers()
	require.NoError(t, err)
	require.Len(t, gs, 1)

	assert.True(t, gs[0].Match("AWSLogs/123456789012/CloudTrail-Digest/us-east-1/2024/01/01/digest.json.gz"))
	assert.False(t, gs[0].Match("AWSLogs/123456789012/CloudTrail/us-east-1/2024/01/01/log.json.gz"))
}
