package forest

// Sample pairs a step number with a cell count.
type Sample struct {
	Step  int
	Count int
}

// Series is a bounded ring buffer of samples. Appending at capacity evicts
// the oldest sample, so a Series holds at most the last cap entries in
// insertion order. Storage grows on demand up to the capacity, since most
// fire clusters die long before filling their window.
type Series struct {
	capacity int
	data     []Sample
	head     int
}

// NewSeries allocates a series holding at most capacity samples.
func NewSeries(capacity int) *Series {
	if capacity <= 0 {
		capacity = 1
	}
	return &Series{capacity: capacity}
}

// Append adds a sample, evicting the oldest one at capacity.
func (s *Series) Append(v Sample) {
	if len(s.data) < s.capacity {
		s.data = append(s.data, v)
		return
	}
	s.data[s.head] = v
	s.head = (s.head + 1) % s.capacity
}

// Len returns the number of stored samples.
func (s *Series) Len() int { return len(s.data) }

// Cap returns the maximum number of samples the series will hold.
func (s *Series) Cap() int { return s.capacity }

// At returns the i-th stored sample, oldest first. i must be in [0, Len).
func (s *Series) At(i int) Sample {
	return s.data[(s.head+i)%len(s.data)]
}

// Last returns the most recently appended sample.
func (s *Series) Last() (Sample, bool) {
	if len(s.data) == 0 {
		return Sample{}, false
	}
	return s.At(len(s.data) - 1), true
}

// Samples returns the stored samples oldest-first in a fresh slice.
func (s *Series) Samples() []Sample {
	out := make([]Sample, len(s.data))
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}
