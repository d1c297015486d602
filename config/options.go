package config

import (
	"fmt"
	"time"
)

// Option mutates a Config under construction. Options validate their own
// argument and fail construction immediately on an invalid value.
type Option func(*Config) error

// WithWorkers sets the worker count (n >= 1).
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return fmt.Errorf("%w: got %d", ErrInvalidWorkers, n)
		}
		c.Workers = n

		return nil
	}
}

// WithIterationCap bounds the number of rounds (n >= 1).
func WithIterationCap(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return fmt.Errorf("%w: got %d", ErrInvalidIterationCap, n)
		}
		c.IterationCap = n

		return nil
	}
}

// WithUnboundedIterations removes any iteration cap.
func WithUnboundedIterations() Option {
	return func(c *Config) error {
		c.IterationCap = 0

		return nil
	}
}

// WithLogging enables or disables structured logging.
func WithLogging(enabled bool) Option {
	return func(c *Config) error {
		c.Logging = enabled

		return nil
	}
}

// WithTimeout sets the advisory per-round timeout (d > 0).
func WithTimeout(d time.Duration) Option {
	return func(c *Config) error {
		if d <= 0 {
			return fmt.Errorf("%w: got %s", ErrInvalidTimeout, d)
		}
		c.Timeout = d

		return nil
	}
}

// WithDiscipline selects the coordination discipline.
func WithDiscipline(d Discipline) Option {
	return func(c *Config) error {
		parsed, err := ParseDiscipline(string(d))
		if err != nil {
			return err
		}
		c.Discipline = parsed

		return nil
	}
}

// WithBarrierTimeout bounds each barrier wait (d > 0).
func WithBarrierTimeout(d time.Duration) Option {
	return func(c *Config) error {
		if d <= 0 {
			return fmt.Errorf("%w: barrier timeout %s", ErrInvalidDuration, d)
		}
		c.BarrierTimeout = d

		return nil
	}
}

// WithShutdownGrace sets how long Shutdown waits for busy workers (d > 0).
func WithShutdownGrace(d time.Duration) Option {
	return func(c *Config) error {
		if d <= 0 {
			return fmt.Errorf("%w: shutdown grace %s", ErrInvalidDuration, d)
		}
		c.ShutdownGrace = d

		return nil
	}
}

// New builds a validated Config from Default and opts.
func New(opts ...Option) (Config, error) {
	cfg := Default()
	if err := cfg.apply(opts...); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// With returns a copy of c with opts applied and validated.
func (c Config) With(opts ...Option) (Config, error) {
	if err := c.apply(opts...); err != nil {
		return Config{}, err
	}

	return c, c.Validate()
}

func (c *Config) apply(opts ...Option) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return err
		}
	}

	return nil
}
