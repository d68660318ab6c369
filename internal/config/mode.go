package config

import (
	"fmt"
	"strings"
)

// Mode is the running mode of the process. The zero value is not a valid mode.
type Mode int

const (
	ModeDevelopment Mode = iota + 1
	ModeTest
	ModeProduction
)

func (m Mode) String() string {
	switch m {
	case ModeDevelopment:
		return "development"
	case ModeTest:
		return "test"
	case ModeProduction:
		return "production"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MarshalText encodes the mode by name so logged configurations stay readable.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Modes returns every valid mode in declaration order.
func Modes() []Mode {
	return []Mode{ModeDevelopment, ModeTest, ModeProduction}
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "development":
		return ModeDevelopment, nil
	case "test":
		return ModeTest, nil
	case "production":
		return ModeProduction, nil
	default:
		names := make([]string, 0, len(Modes()))
		for _, m := range Modes() {
			names = append(names, m.String())
		}
		return 0, fmt.Errorf("invalid mode %q: must be one of %s", s, strings.Join(names, ", "))
	}
}
