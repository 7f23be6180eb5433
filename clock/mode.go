package clock

import "fmt"

// Mode is the state of the clock's state machine.
type Mode int

const (
	Off Mode = iota
	On
	Paused
	Done
)

var modeNames = map[Mode]string{
	Off:    "off",
	On:     "on",
	Paused: "paused",
	Done:   "done",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}

	return fmt.Sprintf("mode(%d)", int(m))
}

// Terminal reports whether the mode has no pending timers of its own.
func (m Mode) Terminal() bool {
	return m == Off || m == Done
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	for k, v := range modeNames {
		if v == string(text) {
			*m = k
			return nil
		}
	}

	return errUnknownMode.Fmt(string(text))
}
