package forest

import (
	"math/rand"

	"forest-ca/internal/core"
)

// Cell enumerates the per-cell states of the forest grid. The numeric values
// double as palette indices for rendering.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellTree
	CellBurning
	CellAsh
)

// World holds the full state of the forest-fire simulation: the cell grid,
// the cluster-ID layer naming which fire each burning or ash cell belongs to,
// and the bounded tracking histories. Every cell in state CellBurning or
// CellAsh carries a positive cluster ID; all other cells carry 0.
type World struct {
	cfg Config

	w, h int

	cells []Cell
	next  []Cell

	ids     *core.IntGrid
	nextIDs *core.IntGrid

	// nextClusterID is monotonically increasing and never recycled, even
	// after cluster deaths.
	nextClusterID int
	stepCount     int

	fireHistory *Series
	registry    map[int]*Cluster
	active      map[int]int

	display *core.ByteGrid

	rng *rand.Rand
}

// New returns a forest world with the given side length and rates, using
// defaults for everything else.
func New(size int, pTree, pFire float64) (*World, error) {
	cfg := DefaultConfig()
	cfg.Size = size
	cfg.PTree = pTree
	cfg.PFire = pFire
	return NewWithConfig(cfg)
}

// NewWithConfig returns a forest world configured from the provided options.
// The initial grid is seeded from the config seed; call Reset to reseed.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n := cfg.Size
	total := n * n
	w := &World{
		cfg:     cfg,
		w:       n,
		h:       n,
		cells:   make([]Cell, total),
		next:    make([]Cell, total),
		ids:     core.NewIntGrid(n, n),
		nextIDs: core.NewIntGrid(n, n),
		display: core.NewByteGrid(n, n),
		rng:     rand.New(rand.NewSource(cfg.Seed)),
	}
	w.Reset(0)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "forest" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the current display buffer. Values are the Cell constants.
func (w *World) Cells() []uint8 { return w.display.Cells() }

// Grid exposes the current cell state layer. Callers must not mutate it.
func (w *World) Grid() []Cell { return w.cells }

// CellAt returns the state of the cell at (x, y).
func (w *World) CellAt(x, y int) Cell { return w.cells[w.display.Index(x, y)] }

// ClusterIDs exposes the cluster-ID layer. Callers must not mutate it.
func (w *World) ClusterIDs() []int { return w.ids.Cells() }

// StepCount returns the number of completed steps.
func (w *World) StepCount() int { return w.stepCount }

// BurningCount returns the number of burning cells in the current grid.
func (w *World) BurningCount() int {
	burning := 0
	for _, size := range w.active {
		burning += size
	}
	return burning
}

// FireHistory returns the last Window (step, total burning count) samples,
// oldest first.
func (w *World) FireHistory() []Sample { return w.fireHistory.Samples() }

// Clusters exposes the cluster registry. Callers must not mutate it.
func (w *World) Clusters() map[int]*Cluster { return w.registry }

// ActiveClusters exposes the burning-cell count per currently active cluster
// ID. Callers must not mutate it.
func (w *World) ActiveClusters() map[int]int { return w.active }

// Reset rebuilds the initial grid using deterministic randomness. A zero seed
// falls back to the config seed. All histories, the cluster registry, and the
// ID counter start over.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Seed(effective)

	for i := range w.cells {
		w.cells[i] = CellEmpty
		w.next[i] = CellEmpty
		if w.rng.Float64() < w.cfg.InitialTreeDensity {
			w.cells[i] = CellTree
		}
	}
	w.ids.Clear()
	w.nextIDs.Clear()

	w.nextClusterID = 1
	w.stepCount = 0
	w.fireHistory = NewSeries(w.cfg.Window)
	w.registry = make(map[int]*Cluster)
	w.active = make(map[int]int)
	w.updateDisplay()
}

// Step advances the simulation by one tick. Every decision reads only the
// previous step's state; the whole grid updates atomically.
func (w *World) Step() {
	cells := w.cells
	next := w.next
	ids := w.ids.Cells()
	nextIDs := w.nextIDs.Cells()

	for i := range next {
		next[i] = CellEmpty
	}
	w.nextIDs.Clear()

	// Burning-cell count per cluster ID igniting this step.
	active := make(map[int]int)

	// Growth and ignition decisions. A tree next to fire always ignites and
	// inherits the highest burning-neighbor ID; a lone tree may be struck by
	// lightning and founds a new cluster.
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			idx := y*w.w + x
			switch cells[idx] {
			case CellEmpty:
				if w.rng.Float64() < w.cfg.PTree {
					next[idx] = CellTree
				}
			case CellTree:
				maxID, nearFire := w.maxBurningNeighborID(x, y)
				switch {
				case nearFire:
					next[idx] = CellBurning
					nextIDs[idx] = maxID
					active[maxID]++
				case w.rng.Float64() < w.cfg.PFire:
					id := w.nextClusterID
					w.nextClusterID++
					next[idx] = CellBurning
					nextIDs[idx] = id
					active[id]++
				default:
					next[idx] = CellTree
				}
			}
		}
	}

	// Ash retention. A cell that was burning or ash keeps its ID as ash only
	// while its fire is still igniting somewhere; the moment a cluster stops
	// spreading, every cell it owns reverts to empty.
	total := w.w * w.h
	for i := 0; i < total; i++ {
		if cells[i] != CellBurning && cells[i] != CellAsh {
			continue
		}
		id := ids[i]
		if id <= 0 {
			continue
		}
		if _, ok := active[id]; ok {
			next[i] = CellAsh
			nextIDs[i] = id
		}
	}

	w.cells, w.next = w.next, w.cells
	w.ids, w.nextIDs = w.nextIDs, w.ids

	w.stepCount++

	burning := 0
	for _, size := range active {
		burning += size
	}
	w.fireHistory.Append(Sample{Step: w.stepCount, Count: burning})

	w.trackClusters(active)
	w.updateDisplay()
}

// Ignite manually starts a fire at (x, y): the cell becomes burning under a
// fresh cluster ID with an immediate registry entry. Out-of-bounds
// coordinates and already-burning cells are ignored.
func (w *World) Ignite(x, y int) {
	if x < 0 || x >= w.w || y < 0 || y >= w.h {
		return
	}
	idx := y*w.w + x
	if w.cells[idx] == CellBurning {
		return
	}
	id := w.nextClusterID
	w.nextClusterID++
	w.cells[idx] = CellBurning
	w.ids.Cells()[idx] = id

	c := &Cluster{Birth: w.stepCount, MaxSize: 1, Sizes: NewSeries(w.cfg.Window)}
	c.Sizes.Append(Sample{Step: w.stepCount, Count: 1})
	w.registry[id] = c
	w.active[id] = 1
	w.display.Cells()[idx] = uint8(CellBurning)
}

// maxBurningNeighborID scans the non-wrapping 4-neighborhood of (x, y) and
// returns the largest cluster ID among burning neighbors.
func (w *World) maxBurningNeighborID(x, y int) (int, bool) {
	ids := w.ids.Cells()
	maxID := 0
	found := false
	consider := func(idx int) {
		if w.cells[idx] != CellBurning {
			return
		}
		found = true
		if ids[idx] > maxID {
			maxID = ids[idx]
		}
	}
	if x > 0 {
		consider(y*w.w + x - 1)
	}
	if x < w.w-1 {
		consider(y*w.w + x + 1)
	}
	if y > 0 {
		consider((y-1)*w.w + x)
	}
	if y < w.h-1 {
		consider((y+1)*w.w + x)
	}
	return maxID, found
}

func (w *World) updateDisplay() {
	display := w.display.Cells()
	for i, c := range w.cells {
		display[i] = uint8(c)
	}
}

func init() {
	core.Register("forest", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		w, err := NewWithConfig(c)
		if err != nil {
			// FromMap only accepts in-range values, so this cannot happen.
			panic(err)
		}
		return w
	})
}
