package common

// ObjectID tags a live game object so it can be found by scanning the
// object collection without knowing its concrete type.
type ObjectID int

const (
	ObjectUnknown ObjectID = iota
	ObjectPlayer
	ObjectAntagonist
	ObjectPrincess
	ObjectBarrel
)

func (id ObjectID) String() string {
	switch id {
	case ObjectPlayer:
		return "player"
	case ObjectAntagonist:
		return "antagonist"
	case ObjectPrincess:
		return "princess"
	case ObjectBarrel:
		return "barrel"
	default:
		return "unknown"
	}
}

// ScreenID names a global UI screen routed by the screen manager.
type ScreenID int

const (
	ScreenTitle ScreenID = iota
	ScreenPlaying
	ScreenVictory
	ScreenGameOver
)

func (id ScreenID) String() string {
	switch id {
	case ScreenTitle:
		return "title"
	case ScreenPlaying:
		return "playing"
	case ScreenVictory:
		return "victory"
	case ScreenGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
