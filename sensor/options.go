package sensor

import "github.com/moffa90/go-sen0177/protocol"

// Config holds the sensor configuration.
type Config struct {
	// Logger is used for logging synchronization activity (optional)
	Logger Logger

	// SyncAttempts is the number of magic marker scan attempts per
	// serial read before giving up. Ignored by block transports.
	SyncAttempts int
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		SyncAttempts: protocol.DefaultSyncAttempts,
	}
}

// Option is a functional option for configuring a sensor.
type Option func(*Config)

// WithLogger sets a logger for sensor operations.
//
// Example:
//
//	dev := sensor.NewSerial(port, sensor.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithSyncAttempts sets the number of magic marker scan attempts per
// serial read. Default is protocol.DefaultSyncAttempts. Block
// transports never scan and ignore this setting.
//
// Example:
//
//	dev := sensor.NewSerial(port, sensor.WithSyncAttempts(20))
func WithSyncAttempts(attempts int) Option {
	return func(c *Config) {
		if attempts > 0 {
			c.SyncAttempts = attempts
		}
	}
}
