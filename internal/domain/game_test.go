package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// play drops pieces into the given columns in order and returns the last move.
func play(t *testing.T, g *Game, columns ...int) Move {
	t.Helper()

	var move Move
	for i, column := range columns {
		var err error
		move, err = g.DropPiece(column)
		require.NoError(t, err, "move %d into column %d", i, column)
	}
	return move
}

// snapshot captures everything a rejected move must leave untouched
type snapshot struct {
	board   *Board
	current PlayerID
	status  GameStatus
	winner  PlayerID
	moves   int
}

func takeSnapshot(g *Game) snapshot {
	return snapshot{
		board:   g.Board(),
		current: g.CurrentPlayer(),
		status:  g.Status(),
		winner:  g.Winner(),
		moves:   g.MoveCount(),
	}
}

func TestNewGame(t *testing.T) {
	t.Run("initial state", func(t *testing.T) {
		// When: create a new game instance
		g, err := NewGame(Player1, Player2, 6, 7)
		require.NoError(t, err)

		// Then: the game should have the expected initial state
		assert.Equal(t, Player1, g.CurrentPlayer())
		assert.Equal(t, StatusActive, g.Status())
		assert.Equal(t, Empty, g.Winner())
		assert.Zero(t, g.MoveCount())
		assert.Equal(t, 6, g.Height())
		assert.Equal(t, 7, g.Width())
		assert.Equal(t, [2]PlayerID{Player1, Player2}, g.Players())
		assert.Zero(t, g.Board().Filled())
		assert.False(t, g.IsFinished())
		assert.Nil(t, g.WinningLine())
	})

	t.Run("custom player ids", func(t *testing.T) {
		g, err := NewGame(7, 9, 4, 5)
		require.NoError(t, err)

		assert.Equal(t, PlayerID(7), g.CurrentPlayer())
		move := play(t, g, 0)
		assert.Equal(t, PlayerID(7), move.Player)
		assert.Equal(t, PlayerID(9), g.CurrentPlayer())
	})

	t.Run("invalid players", func(t *testing.T) {
		_, err := NewGame(Player1, Player1, 6, 7)
		require.ErrorIs(t, err, ErrInvalidPlayers)

		_, err = NewGame(Empty, Player2, 6, 7)
		require.ErrorIs(t, err, ErrInvalidPlayers)
	})

	t.Run("invalid dimensions", func(t *testing.T) {
		_, err := NewGame(Player1, Player2, 3, 7)
		require.ErrorIs(t, err, ErrInvalidDimensions)
	})

	t.Run("default game", func(t *testing.T) {
		g := NewDefaultGame()
		require.NotNil(t, g)
		assert.Equal(t, DefaultRows, g.Height())
		assert.Equal(t, DefaultColumns, g.Width())
	})
}

func TestGame_DropPiece(t *testing.T) {
	t.Run("pieces land on the lowest empty row", func(t *testing.T) {
		g := NewDefaultGame()

		for want := 5; want >= 0; want-- {
			move := play(t, g, 4)
			assert.Equal(t, want, move.Row)
			assert.Equal(t, 4, move.Column)
		}
	})

	t.Run("turns alternate after each accepted move", func(t *testing.T) {
		g := NewDefaultGame()

		move := play(t, g, 0)
		assert.Equal(t, Player1, move.Player)
		assert.Equal(t, Player2, move.NextPlayer)
		assert.Equal(t, Player2, g.CurrentPlayer())

		move = play(t, g, 0)
		assert.Equal(t, Player2, move.Player)
		assert.Equal(t, Player1, g.CurrentPlayer())
	})

	t.Run("full column is a no-op", func(t *testing.T) {
		// Given: column 0 filled to the top
		g := NewDefaultGame()
		play(t, g, 0, 0, 0, 0, 0, 0)
		before := takeSnapshot(g)

		// When: another piece is dropped into it
		_, err := g.DropPiece(0)

		// Then: ErrColumnFull and nothing changed, the same player is still to move
		require.ErrorIs(t, err, ErrColumnFull)
		assert.Equal(t, before, takeSnapshot(g))
		assert.NotContains(t, g.ValidColumns(), 0)
	})

	t.Run("invalid column is a no-op", func(t *testing.T) {
		g := NewDefaultGame()
		play(t, g, 3)
		before := takeSnapshot(g)

		for _, column := range []int{-1, 7} {
			_, err := g.DropPiece(column)
			require.ErrorIs(t, err, ErrInvalidColumn)
		}
		assert.Equal(t, before, takeSnapshot(g))
	})

	t.Run("horizontal win", func(t *testing.T) {
		// Given: A plays the bottom row, B stacks on top of A
		g := NewDefaultGame()

		// Then: none of the first six moves wins
		for _, column := range []int{0, 0, 1, 1, 2, 2} {
			move := play(t, g, column)
			require.Equal(t, StatusActive, move.Status)
		}

		// When: A completes (5,0)..(5,3)
		move := play(t, g, 3)

		// Then: A has won immediately and keeps the turn marker
		assert.Equal(t, StatusWon, move.Status)
		assert.Equal(t, Player1, move.Winner)
		assert.Equal(t, 5, move.Row)
		assert.Equal(t, StatusWon, g.Status())
		assert.Equal(t, Player1, g.Winner())
		assert.Equal(t, Player1, g.CurrentPlayer())
		assert.Equal(t, []Position{{5, 0}, {5, 1}, {5, 2}, {5, 3}}, g.WinningLine())
		assert.True(t, g.IsFinished())
	})

	t.Run("vertical win", func(t *testing.T) {
		g := NewDefaultGame()
		move := play(t, g, 2, 3, 2, 3, 2, 3, 2)

		assert.Equal(t, StatusWon, move.Status)
		assert.Equal(t, Player1, move.Winner)
		assert.Equal(t, []Position{{2, 2}, {3, 2}, {4, 2}, {5, 2}}, move.WinningLine)
	})

	t.Run("diagonal win", func(t *testing.T) {
		// Given: A at (5,0), (4,1), (3,2) with B supporting pieces underneath
		g := NewDefaultGame()
		columns := []int{0, 1, 1, 2, 6, 2, 2, 3, 6, 3, 5, 3}
		for _, column := range columns {
			move := play(t, g, column)
			require.Equal(t, StatusActive, move.Status)
		}

		// When: A lands on (2,3)
		move := play(t, g, 3)

		// Then: the down-left diagonal wins
		assert.Equal(t, 2, move.Row)
		assert.Equal(t, StatusWon, move.Status)
		assert.Equal(t, Player1, move.Winner)
		assert.Equal(t, []Position{{2, 3}, {3, 2}, {4, 1}, {5, 0}}, move.WinningLine)
	})

	t.Run("player two can win", func(t *testing.T) {
		g := NewDefaultGame()
		move := play(t, g, 0, 1, 0, 1, 0, 1, 6, 1)

		assert.Equal(t, StatusWon, move.Status)
		assert.Equal(t, Player2, move.Winner)
		assert.Equal(t, Player2, g.CurrentPlayer())
	})

	t.Run("tie on a full board", func(t *testing.T) {
		g := NewDefaultGame()
		columns := []int{
			5, 4, 5, 0, 6, 2, 4, 5, 5, 0, 4, 1, 1, 0, 4, 5, 6, 5, 3, 1, 1,
			2, 2, 6, 2, 6, 6, 3, 6, 2, 0, 3, 0, 3, 3, 4, 3, 1, 4, 2, 1, 0,
		}

		for i, column := range columns[:len(columns)-1] {
			move := play(t, g, column)
			require.Equal(t, StatusActive, move.Status, "move %d", i)
		}

		move := play(t, g, columns[len(columns)-1])

		assert.Equal(t, StatusDraw, move.Status)
		assert.Equal(t, Empty, move.Winner)
		assert.Equal(t, Empty, g.Winner())
		assert.Nil(t, g.WinningLine())
		assert.Equal(t, 42, g.MoveCount())
		assert.True(t, g.IsFinished())
		assert.Empty(t, g.ValidColumns())
	})

	t.Run("tie on the smallest board", func(t *testing.T) {
		g, err := NewGame(Player1, Player2, 4, 4)
		require.NoError(t, err)

		move := play(t, g, 3, 1, 1, 0, 0, 0, 0, 1, 1, 2, 2, 2, 2, 3, 3, 3)
		assert.Equal(t, StatusDraw, move.Status)
		assert.Equal(t, 16, g.MoveCount())
	})

	t.Run("finished game rejects every move", func(t *testing.T) {
		// Given: a won game
		g := NewDefaultGame()
		play(t, g, 0, 0, 1, 1, 2, 2, 3)
		require.Equal(t, StatusWon, g.Status())
		before := takeSnapshot(g)

		// When: more moves are attempted, valid or not
		for _, column := range []int{4, 0, -1, 99} {
			_, err := g.DropPiece(column)

			// Then: always ErrGameOver and the state never moves
			require.ErrorIs(t, err, ErrGameOver)
		}
		assert.Equal(t, before, takeSnapshot(g))
		assert.Empty(t, g.ValidColumns())
	})

	t.Run("filled cells match accepted moves", func(t *testing.T) {
		g := NewDefaultGame()
		accepted := 0

		// a mix of good drops, full columns and out of range columns
		for _, column := range []int{0, 0, 0, 0, 0, 0, 0, 9, 1, -2, 0, 2, 1} {
			if _, err := g.DropPiece(column); err == nil {
				accepted++
			}
			require.Equal(t, accepted, g.Board().Filled())
			require.Equal(t, accepted, g.MoveCount())
		}
		assert.Equal(t, 9, accepted)
	})
}

func TestGame_BoardIsACopy(t *testing.T) {
	g := NewDefaultGame()
	play(t, g, 0)

	board := g.Board()
	board.Cells[5][0] = Player2
	board.Cells[0][6] = Player1

	fresh := g.Board()
	assert.Equal(t, Player1, fresh.Cells[5][0])
	assert.Equal(t, Empty, fresh.Cells[0][6])
}

func TestGame_Opponent(t *testing.T) {
	g := NewDefaultGame()
	assert.Equal(t, Player2, g.Opponent(Player1))
	assert.Equal(t, Player1, g.Opponent(Player2))
}
