package rules

import (
	"encoding"
	"fmt"
)

// Level is a severity reports of a rule are emitted with.
type Level int

const (
	LevelOff Level = iota
	LevelWarn
	LevelError
)

func (l Level) String() string {
	v, err := l.MarshalText()
	if err != nil {
		return fmt.Sprintf("level-invalid(%d)", l)
	}

	return string(v)
}

var _ encoding.TextUnmarshaler = (*Level)(nil)

// UnmarshalText accepts ESLint spellings: names and numbers 0, 1, 2.
func (l *Level) UnmarshalText(b []byte) error {
	switch string(b) {
	case "off", "0":
		*l = LevelOff
		return nil
	case "warn", "warning", "1":
		*l = LevelWarn
		return nil
	case "error", "2":
		*l = LevelError
		return nil
	default:
		return fmt.Errorf("unknown level %q", b)
	}
}

func (l Level) MarshalText() ([]byte, error) {
	switch l {
	case LevelOff:
		return []byte("off"), nil
	case LevelWarn:
		return []byte("warn"), nil
	case LevelError:
		return []byte("error"), nil
	default:
		return nil, fmt.Errorf("cannot marshal invalid Level(%d)", l)
	}
}
