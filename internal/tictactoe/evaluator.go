package tictactoe

import "github.com/rocketscienceinc/tictactoe-arena/internal/entity"

// WinCombos are scanned in this fixed order; the first completed
// triple decides the winner.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Evaluate derives the terminal outcome from a board: PlayerX or PlayerO
// when a triple is complete, PlayerTie when the board is full without one,
// and EmptyCell while the game is still playable.
func Evaluate(board [9]string) string {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}

	for _, cell := range board {
		if cell == entity.EmptyCell {
			return entity.EmptyCell
		}
	}

	return entity.PlayerTie
}

// IsFinished reports whether the board has a winner or is tied.
func IsFinished(board [9]string) bool {
	return Evaluate(board) != entity.EmptyCell
}
