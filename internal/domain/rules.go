package domain

// direction is a (deltaRow, deltaColumn) step along a line of four
type direction struct {
	dr, dc int
}

// horizontal, vertical, diagonal down-right, diagonal down-left
var directions = [4]direction{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// CheckWin reports whether the piece just placed at (row, column) completed four in a row
// for player. Only runs passing through that cell are looked at, a win can not appear
// anywhere else after a single move.
func CheckWin(board *Board, row, column int, player PlayerID) bool {
	return WinningLine(board, row, column, player) != nil
}

// WinningLine returns the four cells of the first winning run through (row, column),
// or nil if there is none.
func WinningLine(board *Board, row, column int, player PlayerID) []Position {
	if player == Empty || !board.InBounds(row, column) {
		return nil
	}

	for _, d := range directions {
		// slide a window of four along the line so that every window containing the cell is tried
		for k := ToWin - 1; k >= 0; k-- {
			startRow, startCol := row-k*d.dr, column-k*d.dc
			if line := runAt(board, startRow, startCol, d, player); line != nil {
				return line
			}
		}
	}
	return nil
}

// ScanForWin checks the board cell-by-cell for "does a win start here?", in row-major order,
// trying horizontal, vertical, diagonal down-right and diagonal down-left at each start.
// It rescans the whole board and is kept for verification and for replaying boards whose
// last move is unknown.
func ScanForWin(board *Board, player PlayerID) []Position {
	if player == Empty {
		return nil
	}

	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			for _, d := range directions {
				if line := runAt(board, y, x, d, player); line != nil {
					return line
				}
			}
		}
	}
	return nil
}

// runAt returns the run of ToWin cells starting at (row, column) if all of them are in
// bounds and owned by player.
func runAt(board *Board, row, column int, d direction, player PlayerID) []Position {
	line := make([]Position, 0, ToWin)
	for i := 0; i < ToWin; i++ {
		r, c := row+i*d.dr, column+i*d.dc
		if !board.InBounds(r, c) || board.Cells[r][c] != player {
			return nil
		}
		line = append(line, Position{Row: r, Column: c})
	}
	return line
}
