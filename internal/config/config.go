package config

import (
	"fmt"

	"github.com/ivlev/animcore/internal/output"
)

// Config holds the options of one sampling run.
type Config struct {
	InputPath    string
	From         int
	To           int
	RangeSet     bool // From/To were given explicitly
	Layers       []string
	Format       output.Format
	Workers      int
	ShowStats    bool
	BuildVersion string
}

// Range returns the frame range to sample, falling back to the scene's
// in and out points when none was given.
func (c *Config) Range(in, out int) (int, int) {
	if c.RangeSet {
		return c.From, c.To
	}
	return in, out
}

// Validate checks option combinations that flags alone cannot express.
func (c *Config) Validate() error {
	if c.RangeSet && c.To < c.From {
		return fmt.Errorf("--to %d is before --from %d", c.To, c.From)
	}
	if c.Workers < 0 {
		return fmt.Errorf("--workers must not be negative, got %d", c.Workers)
	}
	if _, err := output.ParseFormat(string(c.Format)); err != nil {
		return err
	}
	return nil
}
