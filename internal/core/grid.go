package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// IntGrid stores a 2D grid of int values in row-major order. It is the
// companion of ByteGrid for layers whose values outgrow a byte, such as
// identity labels.
type IntGrid struct {
	W, H int
	data []int
}

// NewIntGrid allocates an int grid with the given dimensions.
func NewIntGrid(w, h int) *IntGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &IntGrid{W: w, H: h, data: make([]int, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *IntGrid) Cells() []int { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *IntGrid) Index(x, y int) int { return y*g.W + x }

// Clear fills the grid with zeros.
func (g *IntGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
