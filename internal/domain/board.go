package domain

// Board is a fixed-size grid of cells. Row 0 is the top and Height-1 the bottom,
// so pieces fall towards higher row indexes.
type Board struct {
	Height int
	Width  int
	Cells  [][]PlayerID
}

func NewBoard(height, width int) (*Board, error) {
	if height < MinDimension || width < MinDimension || height > MaxDimension || width > MaxDimension {
		return nil, ErrInvalidDimensions
	}

	cells := make([][]PlayerID, height)
	for i := range cells {
		cells[i] = make([]PlayerID, width)
	}
	return &Board{Height: height, Width: width, Cells: cells}, nil
}

func (b *Board) InBounds(row, column int) bool {
	return row >= 0 && row < b.Height && column >= 0 && column < b.Width
}

func (b *Board) IsValidColumn(column int) bool {
	return column >= 0 && column < b.Width
}

// FindSpot returns the lowest empty row of the column, or -1 when the column is full.
func (b *Board) FindSpot(column int) int {
	for row := b.Height - 1; row >= 0; row-- {
		if b.Cells[row][column] == Empty {
			return row
		}
	}
	return -1
}

// DropDisk lets the disk fall down the column until it reaches the bottom or another disk.
func (b *Board) DropDisk(column int, player PlayerID) (int, error) {
	if !b.IsValidColumn(column) {
		return -1, ErrInvalidColumn
	}

	row := b.FindSpot(column)
	if row < 0 {
		return -1, ErrColumnFull
	}

	b.Cells[row][column] = player
	return row, nil
}

// the top row fills last, so checking it is enough
func (b *Board) IsFull() bool {
	for c := 0; c < b.Width; c++ {
		if b.Cells[0][c] == Empty {
			return false
		}
	}
	return true
}

func (b *Board) Filled() int {
	count := 0
	for _, row := range b.Cells {
		for _, cell := range row {
			if cell != Empty {
				count++
			}
		}
	}
	return count
}

func (b *Board) ValidColumns() []int {
	columns := []int{}
	for c := 0; c < b.Width; c++ {
		if b.Cells[0][c] == Empty {
			columns = append(columns, c)
		}
	}
	return columns
}

// this creates a deep copy of the board
func (b *Board) Copy() *Board {
	cells := make([][]PlayerID, len(b.Cells))
	for i := range b.Cells {
		cells[i] = make([]PlayerID, len(b.Cells[i]))
		copy(cells[i], b.Cells[i])
	}
	return &Board{Height: b.Height, Width: b.Width, Cells: cells}
}

// Ints flattens the board to plain ints for JSON payloads.
func (b *Board) Ints() [][]int {
	out := make([][]int, len(b.Cells))
	for i := range b.Cells {
		out[i] = make([]int, len(b.Cells[i]))
		for j := range b.Cells[i] {
			out[i][j] = int(b.Cells[i][j])
		}
	}
	return out
}
