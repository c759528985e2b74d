package room

import "fmt"

// State is the lifecycle state of a room
type State int

// state constants
const (
	StateWaiting State = iota
	StateDealing
	StatePlaying
	StateTrucoPending
	StateElevenPending
	StateHandDone
	StateSetDone
	StateMatchDone
)

var stateNames = [...]string{
	"WAITING",
	"DEALING",
	"PLAYING",
	"TRUCO_PENDING",
	"ELEVEN_PENDING",
	"HAND_DONE",
	"SET_DONE",
	"MATCH_DONE",
}

func (s State) String() string {
	if s < StateWaiting || s > StateMatchDone {
		return fmt.Sprintf("state(%d)", int(s))
	}

	return stateNames[s]
}

// MarshalText encodes the state by name
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name
func (s *State) UnmarshalText(text []byte) error {
	for i, name := range stateNames {
		if name == string(text) {
			*s = State(i)
			return nil
		}
	}

	return fmt.Errorf("unknown state: %q", text)
}

// reasons a match ends
const (
	ReasonSets         = "sets"
	ReasonLeft         = "left"
	ReasonDisconnected = "disconnected"
	ReasonIdle         = "idle"
)
