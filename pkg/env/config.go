package env

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang/glog"
	"gopkg.in/yaml.v3"
)

// Config provides the common options of irlink binaries.
type Config struct {
	// DeviceID names the device in bus topics.
	DeviceID string `yaml:"device-id"`
	// MQTTURL specifies the MQTT broker to bridge to, empty to disable.
	// e.g. mqtt://host:port/topic-prefix/
	MQTTURL string `yaml:"mqtt-url"`
	// WebsocketAddr is the listen address of the monitor, empty to disable.
	WebsocketAddr string `yaml:"websocket-addr"`
	// PollInterval is how often the receive queue is drained.
	PollInterval time.Duration `yaml:"poll-interval"`

	// ConfigFile is an optional YAML file. Values set by flags take
	// precedence over it.
	ConfigFile string `yaml:"-"`
}

var defaultConfig = Config{
	DeviceID:      FallbackDeviceID,
	MQTTURL:       "mqtt://localhost:1883/irlink/",
	WebsocketAddr: ":8038",
	PollInterval:  20 * time.Millisecond,
}

func init() {
	if id, err := MachineID(); err == nil {
		defaultConfig.DeviceID = id
	}
	if err := defaultConfig.ApplyEnv(os.Getenv); err != nil {
		glog.Warningf("environment: %v", err)
	}
}

// ApplyEnv overrides the config with IRLINK_* variables.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if val := getenv("IRLINK_DEVICE_ID"); val != "" {
		c.DeviceID = val
	}
	if val, ok := lookupEnv(getenv, "IRLINK_MQTT_URL"); ok {
		c.MQTTURL = val
	}
	if val, ok := lookupEnv(getenv, "IRLINK_WEBSOCKET_ADDR"); ok {
		c.WebsocketAddr = val
	}
	if val := getenv("IRLINK_POLL_INTERVAL"); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("IRLINK_POLL_INTERVAL: %v", err)
		}
		c.PollInterval = d
	}
	if val := getenv("IRLINK_CONFIG"); val != "" {
		c.ConfigFile = val
	}
	return nil
}

// lookupEnv treats "-" as an explicit empty value, so a feature can be
// disabled from the environment.
func lookupEnv(getenv func(string) string, key string) (string, bool) {
	val := getenv(key)
	if val == "" {
		return "", false
	}
	if val == "-" {
		return "", true
	}
	return val, true
}

// SetupFlags sets up command line flags on the default config.
func SetupFlags() {
	defaultConfig.BindFlags(flag.CommandLine)
}

// BindFlags registers flags bound to c.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.DeviceID, "id", c.DeviceID, "Device ID used in bus topics.")
	fs.StringVar(&c.MQTTURL, "mqtt", c.MQTTURL, "MQTT broker URL, empty to disable.")
	fs.StringVar(&c.WebsocketAddr, "ws", c.WebsocketAddr, "Websocket monitor listen address, empty to disable.")
	fs.DurationVar(&c.PollInterval, "poll", c.PollInterval, "Receive queue poll interval.")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "YAML config file.")
}

// Default gets the default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// LoadFile overrides the config with values present in a YAML file.
func (c *Config) LoadFile(fn string) error {
	f, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("config %s: %v", fn, err)
	}
	return nil
}

var flagFields = map[string]func(dst, src *Config){
	"id":   func(dst, src *Config) { dst.DeviceID = src.DeviceID },
	"mqtt": func(dst, src *Config) { dst.MQTTURL = src.MQTTURL },
	"ws":   func(dst, src *Config) { dst.WebsocketAddr = src.WebsocketAddr },
	"poll": func(dst, src *Config) { dst.PollInterval = src.PollInterval },
}

// ApplyFile loads ConfigFile, if any, after fs has been parsed into c.
// Values of flags explicitly set in fs are kept.
func (c *Config) ApplyFile(fs *flag.FlagSet) error {
	if c.ConfigFile == "" {
		return nil
	}
	flagged := *c
	if err := c.LoadFile(c.ConfigFile); err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		if copyField, ok := flagFields[f.Name]; ok {
			copyField(c, &flagged)
		}
	})
	return nil
}

// Validate checks the config.
func (c *Config) Validate() error {
	if c.DeviceID == "" {
		return fmt.Errorf("device id must be specified")
	}
	if strings.ContainsAny(c.DeviceID, "/+#") {
		return fmt.Errorf("invalid device id %q", c.DeviceID)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive: %v", c.PollInterval)
	}
	return nil
}

// MustLoad parses command line flags into the default config, applies the
// config file and fails on error.
func MustLoad() *Config {
	SetupFlags()
	flag.Parse()
	conf := Default()
	if err := conf.ApplyFile(flag.CommandLine); err != nil {
		glog.Fatal(err)
	}
	if err := conf.Validate(); err != nil {
		glog.Fatal(err)
	}
	return conf
}
