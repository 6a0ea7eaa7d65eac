package combat

import "fmt"

type Event struct {
	Round   int            `json:"round"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

type Faction int

const (
	FactionPlayer Faction = iota
	FactionMonster
)

func (f Faction) String() string {
	if f == FactionPlayer {
		return "player"
	}
	return "monster"
}

// Marker is the occupancy of one grid cell.
type Marker int

const (
	MarkerEmpty Marker = iota
	MarkerPlayer
	MarkerMonster
	MarkerDead
)

func (m Marker) String() string {
	switch m {
	case MarkerPlayer:
		return "player"
	case MarkerMonster:
		return "monster"
	case MarkerDead:
		return "dead"
	default:
		return "empty"
	}
}

func (m Marker) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Marker) UnmarshalText(b []byte) error {
	for _, cand := range []Marker{MarkerEmpty, MarkerPlayer, MarkerMonster, MarkerDead} {
		if cand.String() == string(b) {
			*m = cand
			return nil
		}
	}
	return fmt.Errorf("unknown marker %q", b)
}

// live marker a faction leaves on the cell it stands on
func markerFor(f Faction) Marker {
	if f == FactionPlayer {
		return MarkerPlayer
	}
	return MarkerMonster
}

func opposing(f Faction) Faction {
	if f == FactionPlayer {
		return FactionMonster
	}
	return FactionPlayer
}
