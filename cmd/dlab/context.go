package main

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"dlab/internal/config"
	"dlab/internal/logging"
	"dlab/remote"
)

type commandContext struct {
	portFlag     *int
	configFlag   *string
	timeoutFlag  *time.Duration
	retriesFlag  *int
	jsonFlag     *bool
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	logOnce sync.Once
	log     *slog.Logger
}

func newCommandContext(portFlag *int, configFlag *string, timeoutFlag *time.Duration, retriesFlag *int, jsonFlag *bool, logLevelFlag *string) *commandContext {
	return &commandContext{
		portFlag:     portFlag,
		configFlag:   configFlag,
		timeoutFlag:  timeoutFlag,
		retriesFlag:  retriesFlag,
		jsonFlag:     jsonFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) logger() *slog.Logger {
	c.logOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil || cfg == nil {
			c.log = logging.NewNop()
			return
		}
		level := cfg.Logging.Level
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			level = *c.logLevelFlag
		}
		logger, err := logging.New(logging.Options{Level: level, Format: cfg.Logging.Format})
		if err != nil {
			c.log = logging.NewNop()
			return
		}
		c.log = logger
	})
	return c.log
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

// connectOptions merges configuration defaults with flag overrides.
func (c *commandContext) connectOptions() (remote.Options, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return remote.Options{}, err
	}
	opts := remote.Options{
		Port:    cfg.Connection.Port,
		Timeout: time.Duration(cfg.Connection.TimeoutSeconds * float64(time.Second)),
		Retries: cfg.Connection.Retries,
		Logger:  c.logger(),
	}
	if c.portFlag != nil && *c.portFlag > 0 {
		opts.Port = *c.portFlag
	}
	if c.timeoutFlag != nil && *c.timeoutFlag > 0 {
		opts.Timeout = *c.timeoutFlag
	}
	if c.retriesFlag != nil && *c.retriesFlag > 0 {
		opts.Retries = *c.retriesFlag
	}
	return opts, nil
}

func (c *commandContext) withClient(fn func(*remote.Client) error) error {
	opts, err := c.connectOptions()
	if err != nil {
		return err
	}
	client, err := remote.Connect(opts)
	if err != nil {
		return err
	}
	defer client.Close()
	return fn(client)
}
