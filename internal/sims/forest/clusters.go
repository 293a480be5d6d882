package forest

// Cluster records the lifecycle of one tracked fire. A cluster is born the
// step its ID first appears among burning cells and dies the first step no
// burning cell carries its ID. Dead clusters linger in the registry for one
// history window before being pruned.
type Cluster struct {
	Birth int
	// Death is 0 while the fire is still burning somewhere. Deaths are only
	// recorded during Step, after the step counter has advanced past 0, so
	// zero is unambiguous.
	Death int
	// MaxSize is the largest simultaneous burning-cell count observed.
	MaxSize int
	// Sizes holds the last Window (step, burning-cell count) samples.
	Sizes *Series
}

// Alive reports whether the cluster still has burning cells.
func (c *Cluster) Alive() bool { return c.Death == 0 }

// ActiveClusterCount returns the number of clusters currently burning.
func (w *World) ActiveClusterCount() int { return len(w.active) }

// TrackedClusterCount returns the number of registry entries, dead ones
// awaiting pruning included.
func (w *World) TrackedClusterCount() int { return len(w.registry) }

// LargestActiveCluster returns the ID and burning-cell count of the biggest
// currently burning cluster, or zeros when nothing burns. Ties resolve to
// the higher ID.
func (w *World) LargestActiveCluster() (int, int) {
	bestID, bestSize := 0, 0
	for id, size := range w.active {
		if size > bestSize || (size == bestSize && id > bestID) {
			bestID, bestSize = id, size
		}
	}
	return bestID, bestSize
}

// trackClusters updates the registry from this step's active cluster sizes:
// new IDs get entries, active IDs get size samples, IDs active last step but
// not this one are marked dead, and entries dead for more than one window
// are pruned.
func (w *World) trackClusters(active map[int]int) {
	for id, size := range active {
		c, ok := w.registry[id]
		if !ok {
			c = &Cluster{Birth: w.stepCount, Sizes: NewSeries(w.cfg.Window)}
			w.registry[id] = c
		}
		c.Sizes.Append(Sample{Step: w.stepCount, Count: size})
		if size > c.MaxSize {
			c.MaxSize = size
		}
	}

	for id := range w.active {
		if _, still := active[id]; still {
			continue
		}
		if c, ok := w.registry[id]; ok && c.Death == 0 {
			c.Death = w.stepCount
		}
	}
	w.active = active

	for id, c := range w.registry {
		if c.Death != 0 && w.stepCount-c.Death > w.cfg.Window {
			delete(w.registry, id)
		}
	}
}
