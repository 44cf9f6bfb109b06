package domain

// Matrix is a labeled two-dimensional table of travel metrics.
// Rows follow origin input order, columns destination input order.
// A nil cell means the backend found no route for that pair.
type Matrix struct {
	RowLabels []string
	ColLabels []string
	Cells     [][]*float64
}

func (m *Matrix) Rows() int { return len(m.RowLabels) }

func (m *Matrix) Cols() int { return len(m.ColLabels) }

// At returns the cell value and whether the pair is routable.
func (m *Matrix) At(row, col int) (float64, bool) {
	if row < 0 || row >= len(m.Cells) || col < 0 || col >= len(m.Cells[row]) {
		return 0, false
	}
	cell := m.Cells[row][col]
	if cell == nil {
		return 0, false
	}
	return *cell, true
}

// TravelMatrices pairs the duration and distance views produced by one
// many-to-many table call. Both share the same labels and shape.
type TravelMatrices struct {
	DurationsMinutes Matrix
	DistancesKm      Matrix
}
