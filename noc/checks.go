package noc

import (
	"sort"

	"github.com/rhartert/sparsesets"
)

// DuplicateLinks returns the links that connect the same source and sink as
// a link added before them, in increasing order of LinkID. Such links are
// valid (some NoCs use several physical links between two routers) but are
// ignored by ParallelLink and SingleLink which return the first one.
func (s *Storage) DuplicateLinks() []LinkID {
	var dups []LinkID

	// Sinks already reached from the current router. The set is reused for
	// all routers and cleared in O(1).
	sinks := sparsesets.New(len(s.routers))
	for _, out := range s.outgoing {
		sinks.Clear()
		for _, e := range out {
			sink := int(s.links[e].sink)
			if sinks.Contains(sink) {
				dups = append(dups, e)
				continue
			}
			sinks.Insert(sink)
		}
	}

	sort.Slice(dups, func(i, j int) bool {
		return dups[i] < dups[j]
	})
	return dups
}

// IsolatedRouters returns the routers that are neither the source nor the sink
// of any link, in increasing order of RouterID.
func (s *Storage) IsolatedRouters() []RouterID {
	connected := sparsesets.New(len(s.routers))
	for _, l := range s.links {
		connected.Insert(int(l.source))
		connected.Insert(int(l.sink))
	}

	var isolated []RouterID
	for i := range s.routers {
		if !connected.Contains(i) {
			isolated = append(isolated, RouterID(i))
		}
	}
	return isolated
}

// SelfLoops returns the links whose source is also their sink, in increasing
// order of LinkID.
func (s *Storage) SelfLoops() []LinkID {
	var loops []LinkID
	for i, l := range s.links {
		if l.source == l.sink {
			loops = append(loops, LinkID(i))
		}
	}
	return loops
}
