// internal/state/state.go
package state

import "strings"

// State is the ensemble role (or failure bucket) of one instance.
// Exactly one state holds per instance per check cycle.
type State int

const (
	// Leader, Follower, Observer, Standalone are the server roles a
	// healthy instance reports.
	Leader State = iota
	Follower
	Observer
	Standalone

	// Down means the instance was unreachable at the transport level.
	Down

	// Inactive means the instance answered but is not serving requests.
	Inactive

	// Unknown is the bucket for everything else: unexpected errors,
	// unparsable responses, unrecognized modes.
	Unknown
)

// All lists every state, in gauge emission order.
func All() []State {
	return []State{Leader, Follower, Observer, Standalone, Down, Inactive, Unknown}
}

func (s State) String() string {
	switch s {
	case Leader:
		return "leader"
	case Follower:
		return "follower"
	case Observer:
		return "observer"
	case Standalone:
		return "standalone"
	case Down:
		return "down"
	case Inactive:
		return "inactive"
	default:
		return "unknown"
	}
}

// FromMode maps a mode string reported by `stat` or `mntr` onto a
// State. Anything unrecognized is Unknown.
func FromMode(mode string) State {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "leader":
		return Leader
	case "follower":
		return Follower
	case "observer":
		return Observer
	case "standalone":
		return Standalone
	case "inactive":
		return Inactive
	default:
		return Unknown
	}
}

// Parse matches a stored state name back to its State. ok is false for
// names outside the bounded set.
func Parse(name string) (State, bool) {
	for _, s := range All() {
		if s.String() == name {
			return s, true
		}
	}
	return Unknown, false
}
