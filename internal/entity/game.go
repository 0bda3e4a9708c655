package entity

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""

	BoardSize = 9
)

// Game is one match inside a host's store: the board, whose move is next
// and the two player identities. Terminal state is never stored, it is
// recomputed from the board on demand.
type Game struct {
	Board   [9]string `json:"board"`
	Turn    string    `json:"turn"`
	PlayerX string    `json:"player_x"`
	PlayerO string    `json:"player_o"`
}

func NewGame(playerX, playerO, firstTurn string) *Game {
	return &Game{
		Board:   [9]string{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell},
		Turn:    firstTurn,
		PlayerX: playerX,
		PlayerO: playerO,
	}
}

// MarkOf maps a caller identity to its mark in this game.
// The second return value reports whether the caller plays here at all.
func (that *Game) MarkOf(callerID string) (string, bool) {
	switch callerID {
	case that.PlayerX:
		return PlayerX, true
	case that.PlayerO:
		return PlayerO, true
	default:
		return EmptyCell, false
	}
}

// IdentityOf is the inverse of MarkOf; an unknown mark yields "".
func (that *Game) IdentityOf(mark string) string {
	switch mark {
	case PlayerX:
		return that.PlayerX
	case PlayerO:
		return that.PlayerO
	default:
		return ""
	}
}

func ToggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
