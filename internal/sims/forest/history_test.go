package forest

import (
	"slices"
	"testing"
)

func TestSeriesEvictsOldestAtCapacity(t *testing.T) {
	s := NewSeries(3)

	for i := 1; i <= 5; i++ {
		s.Append(Sample{Step: i, Count: i * 10})
	}

	if s.Len() != 3 {
		t.Fatalf("length should be capped at 3, got %d", s.Len())
	}
	if s.Cap() != 3 {
		t.Fatalf("capacity should be 3, got %d", s.Cap())
	}

	want := []Sample{{Step: 3, Count: 30}, {Step: 4, Count: 40}, {Step: 5, Count: 50}}
	if got := s.Samples(); !slices.Equal(got, want) {
		t.Fatalf("samples = %v, want %v", got, want)
	}
	for i, w := range want {
		if got := s.At(i); got != w {
			t.Fatalf("At(%d) = %+v, want %+v", i, got, w)
		}
	}

	last, ok := s.Last()
	if !ok || last != (Sample{Step: 5, Count: 50}) {
		t.Fatalf("Last() = %+v, %v", last, ok)
	}
}

func TestSeriesBelowCapacity(t *testing.T) {
	s := NewSeries(4)

	if _, ok := s.Last(); ok {
		t.Fatal("empty series should have no last sample")
	}
	if s.Len() != 0 {
		t.Fatalf("empty series length should be 0, got %d", s.Len())
	}

	s.Append(Sample{Step: 1, Count: 2})
	s.Append(Sample{Step: 2, Count: 4})

	want := []Sample{{Step: 1, Count: 2}, {Step: 2, Count: 4}}
	if got := s.Samples(); !slices.Equal(got, want) {
		t.Fatalf("samples = %v, want %v", got, want)
	}
}

func TestSeriesCapacityFloor(t *testing.T) {
	s := NewSeries(0)
	if s.Cap() != 1 {
		t.Fatalf("non-positive capacity should clamp to 1, got %d", s.Cap())
	}
	s.Append(Sample{Step: 1, Count: 1})
	s.Append(Sample{Step: 2, Count: 2})
	if s.Len() != 1 {
		t.Fatalf("length should stay at 1, got %d", s.Len())
	}
	if last, _ := s.Last(); last.Step != 2 {
		t.Fatalf("newest sample should win, got %+v", last)
	}
}
