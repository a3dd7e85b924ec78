package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	tests := []struct {
		name          string
		height, width int
		wantErr       error
	}{
		{"default size", DefaultRows, DefaultColumns, nil},
		{"smallest winnable", 4, 4, nil},
		{"largest allowed", MaxDimension, MaxDimension, nil},
		{"too short", 3, 7, ErrInvalidDimensions},
		{"too narrow", 6, 3, ErrInvalidDimensions},
		{"zero", 0, 0, ErrInvalidDimensions},
		{"negative", -6, 7, ErrInvalidDimensions},
		{"too wide", 6, MaxDimension + 1, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoard(tt.height, tt.width)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, board)
				return
			}

			require.NoError(t, err)
			require.Len(t, board.Cells, tt.height)
			for _, row := range board.Cells {
				require.Len(t, row, tt.width)
			}
			assert.Zero(t, board.Filled())
		})
	}
}

func TestBoard_DropDisk(t *testing.T) {
	t.Run("disks stack from the bottom up", func(t *testing.T) {
		// Given: an empty 6x7 board
		board, err := NewBoard(6, 7)
		require.NoError(t, err)

		// When / Then: each drop into column 2 lands one row higher
		for want := 5; want >= 0; want-- {
			row, err := board.DropDisk(2, Player1)
			require.NoError(t, err)
			assert.Equal(t, want, row)
			assert.Equal(t, Player1, board.Cells[row][2])
		}

		// Then: the column is full and the board is unchanged by another drop
		before := board.Copy()
		row, err := board.DropDisk(2, Player2)
		require.ErrorIs(t, err, ErrColumnFull)
		assert.Equal(t, -1, row)
		assert.Equal(t, before, board)
	})

	t.Run("invalid column", func(t *testing.T) {
		board, err := NewBoard(6, 7)
		require.NoError(t, err)

		for _, column := range []int{-1, 7, 100} {
			_, err := board.DropDisk(column, Player1)
			require.ErrorIs(t, err, ErrInvalidColumn)
		}
		assert.Zero(t, board.Filled())
	})
}

func TestBoard_IsFullAndValidColumns(t *testing.T) {
	board, err := NewBoard(4, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, board.ValidColumns())

	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			_, err := board.DropDisk(c, Player1)
			require.NoError(t, err)
		}
		assert.NotContains(t, board.ValidColumns(), c)
	}

	assert.True(t, board.IsFull())
	assert.Empty(t, board.ValidColumns())
	assert.Equal(t, 16, board.Filled())
}

func TestBoard_Copy(t *testing.T) {
	board, err := NewBoard(6, 7)
	require.NoError(t, err)
	_, err = board.DropDisk(0, Player1)
	require.NoError(t, err)

	clone := board.Copy()
	clone.Cells[5][1] = Player2

	assert.Equal(t, Empty, board.Cells[5][1])
	assert.Equal(t, Player1, clone.Cells[5][0])
}

func TestBoard_Ints(t *testing.T) {
	board, err := NewBoard(4, 4)
	require.NoError(t, err)
	_, err = board.DropDisk(3, Player2)
	require.NoError(t, err)

	ints := board.Ints()
	assert.Equal(t, 2, ints[3][3])
	assert.Equal(t, 0, ints[0][0])
}
