package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/convox/cloudtrailer/pkg/helpers"
	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

const (
	DefaultCreateUserTopicArn = "arn:aws:sns:us-west-2:311339799303:cloudtrail-create-user-events"
	DefaultAlertEvent         = "CreateUser"
	DefaultAlertParameter     = "userName"
	DefaultAlertSubject       = "Super cool event ALERT"
)

// Config is everything an invocation needs to know about its environment
type Config struct {
	// AlertTopicArn is read from the environment but alerts are not sent to it,
	// they go to CreateUserTopicArn.
	AlertTopicArn      string `yaml:"alertTopicArn"`
	CreateUserTopicArn string `yaml:"createUserTopicArn"`

	AlertEvent     string `yaml:"alertEvent"`
	AlertParameter string `yaml:"alertParameter"`
	AlertSubject   string `yaml:"alertSubject"`

	// IgnoreKeys are glob patterns for object keys that are never fetched
	IgnoreKeys []string `yaml:"ignoreKeys"`

	LogRecords bool `yaml:"logRecords"`

	SyslogURL       string `yaml:"syslogUrl"`
	SegmentWriteKey string `yaml:"segmentWriteKey"`
	RollbarToken    string `yaml:"rollbarToken"`

	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
	Debug    bool   `yaml:"debug"`
}

// Default returns a Config with every default applied
func Default() Config {
	return Config{
		CreateUserTopicArn: DefaultCreateUserTopicArn,
		AlertEvent:         DefaultAlertEvent,
		AlertParameter:     DefaultAlertParameter,
		AlertSubject:       DefaultAlertSubject,
		LogRecords:         true,
	}
}

// Load reads the file named by CONFIG_FILE, if any, and then the environment
func Load() (Config, error) {
	return LoadEnv(os.LookupEnv)
}

// LoadEnv is Load with a custom environment lookup
func LoadEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()

	if path, ok := lookup("CONFIG_FILE"); ok && path != "" {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return c, errors.WithStack(err)
		}

		if err := yaml.Unmarshal(data, &c); err != nil {
			return c, errors.Wrapf(err, "config file %s", path)
		}
	}

	str := func(name string, v *string) {
		if s, ok := lookup(name); ok && s != "" {
			*v = s
		}
	}

	str("AlertTopicArn", &c.AlertTopicArn)
	str("CREATE_USER_TOPIC_ARN", &c.CreateUserTopicArn)
	str("ALERT_EVENT", &c.AlertEvent)
	str("ALERT_PARAMETER", &c.AlertParameter)
	str("ALERT_SUBJECT", &c.AlertSubject)
	str("SYSLOG_URL", &c.SyslogURL)
	str("SEGMENT_WRITE_KEY", &c.SegmentWriteKey)
	str("ROLLBAR_TOKEN", &c.RollbarToken)
	str("AWS_ENDPOINT", &c.Endpoint)

	region, _ := lookup("AWS_REGION")
	defaultRegion, _ := lookup("AWS_DEFAULT_REGION")
	c.Region = helpers.CoalesceString(region, defaultRegion, c.Region)

	if s, ok := lookup("IGNORE_KEYS"); ok && s != "" {
		c.IgnoreKeys = []string{}

		for _, k := range strings.Split(s, ",") {
			if k = strings.TrimSpace(k); k != "" {
				c.IgnoreKeys = append(c.IgnoreKeys, k)
			}
		}
	}

	for name, v := range map[string]*bool{"LOG_RECORDS": &c.LogRecords, "DEBUG": &c.Debug} {
		if s, ok := lookup(name); ok && s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return c, errors.Wrapf(err, "invalid %s", name)
			}
			*v = b
		}
	}

	if err := c.Validate(); err != nil {
		return c, err
	}

	return c, nil
}

// Validate checks that the configuration can run an invocation
func (c Config) Validate() error {
	if c.CreateUserTopicArn == "" {
		return errors.WithStack(fmt.Errorf("create user topic arn required"))
	}

	if c.AlertEvent == "" {
		return errors.WithStack(fmt.Errorf("alert event required"))
	}

	if _, err := c.IgnoreMatchers(); err != nil {
		return err
	}

	return nil
}

// IgnoreMatchers compiles IgnoreKeys. Wildcards do not cross a / boundary.
func (c Config) IgnoreMatchers() ([]glob.Glob, error) {
	gs := []glob.Glob{}

	for _, k := range c.IgnoreKeys {
		g, err := glob.Compile(k, '/')
		if err != nil {
			return nil, errors.Wrapf(err, "invalid ignore pattern %q", k)
		}
		gs = append(gs, g)
	}

	return gs, nil
}
