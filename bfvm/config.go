package bfvm

import (
	"errors"
	"fmt"
	"math"
)

type Config struct {
	TapeLength      int
	MinValue        int
	MaxValue        int
	EOF             EOFPolicy
	ValueOverflow   OverflowPolicy
	PointerOverflow OverflowPolicy
	Encoding        Encoding
}

const (
	DefaultTapeLength = 30000
	DefaultMinValue   = 0
	DefaultMaxValue   = math.MaxUint8
)

func DefaultConfig() Config {
	return Config{
		TapeLength: DefaultTapeLength,
		MinValue:   DefaultMinValue,
		MaxValue:   DefaultMaxValue,
	}
}

var ErrInvalidConfig = errors.New("invalid config")

func (c Config) Validate() error {
	if c.TapeLength <= 0 {
		return fmt.Errorf("%w: tape length must be positive, got %d", ErrInvalidConfig, c.TapeLength)
	}
	if c.MinValue < 0 || c.MaxValue > math.MaxUint8 {
		return fmt.Errorf("%w: cell range [%d, %d] exceeds a byte", ErrInvalidConfig, c.MinValue, c.MaxValue)
	}
	if c.MinValue > c.MaxValue {
		return fmt.Errorf("%w: minimum %d above maximum %d", ErrInvalidConfig, c.MinValue, c.MaxValue)
	}
	if c.EOF > EOFNoChange {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, c.EOF)
	}
	if c.ValueOverflow > PolicyIgnore {
		return fmt.Errorf("%w: value %v", ErrInvalidConfig, c.ValueOverflow)
	}
	if c.PointerOverflow > PolicyIgnore {
		return fmt.Errorf("%w: pointer %v", ErrInvalidConfig, c.PointerOverflow)
	}
	if c.Encoding > EncodingByte {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, c.Encoding)
	}
	return nil
}

// initialCell differs from the all-zero start when min > 0:
// cells then start at the minimum so every cell is inside the range.
func (c Config) initialCell() byte {
	if c.MinValue > 0 {
		return byte(c.MinValue)
	}
	return 0
}
