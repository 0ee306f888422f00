package field

import "fmt"

// Config describes one game setup: the field dimensions and the fleet.
type Config struct {
	W, H  int
	Fleet Fleet
}

func DefaultConfig() Config {
	return Config{W: 10, H: 10, Fleet: StandardFleet()}
}

func (c *Config) IsValid() error {
	if c.W <= 0 || c.H <= 0 {
		return fmt.Errorf("non-positive field size: [%d %d]", c.W, c.H)
	}

	if len(c.Fleet) == 0 {
		return fmt.Errorf("empty fleet")
	}

	for _, length := range c.Fleet {
		if length <= 0 {
			return fmt.Errorf("non-positive ship length: %d", length)
		}
	}

	return nil
}
