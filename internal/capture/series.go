package capture

import "sort"

// series is one time-ordered data source. records are sorted by start tick and
// maxEnd[i] holds the largest end tick among records[0..i], which lets
// overlapping records (timers at different depths) be range-searched.
type series struct {
	records []Record
	maxEnd  []Tick
}

func newSeries(records []Record) *series {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Start != records[j].Start {
			return records[i].Start < records[j].Start
		}
		return records[i].Depth < records[j].Depth
	})
	s := &series{records: records, maxEnd: make([]Tick, len(records))}
	var running Tick
	for i, r := range records {
		if end := r.End(); end > running || i == 0 {
			running = end
		}
		s.maxEnd[i] = running
	}
	return s
}

func (s *series) len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// each visits records intersecting [min, max] in start order until fn returns
// false.
func (s *series) each(min, max Tick, fn func(Record) bool) {
	if s == nil || min > max {
		return
	}
	first := sort.Search(len(s.maxEnd), func(i int) bool { return s.maxEnd[i] >= min })
	for i := first; i < len(s.records); i++ {
		r := s.records[i]
		if r.Start > max {
			return
		}
		if r.End() < min {
			continue
		}
		if !fn(r) {
			return
		}
	}
}

func (s *series) bounds() (Tick, Tick, bool) {
	if s.len() == 0 {
		return 0, 0, false
	}
	return s.records[0].Start, s.maxEnd[len(s.maxEnd)-1], true
}
