// Package noc stores the topology of the Network-on-Chip embedded in a device:
// its routers, the directed links between them and the outgoing links of each
// router.
//
// A Storage is built in two phases. Routers and links are first added by the
// component reading the architecture description. FinishedBuilding then locks
// the topology so that identifiers and adjacency lists remain stable for the
// algorithms that consume it. Per-element fields (e.g. link usage) can still
// be updated after that point through the mutable accessors.
//
// A Storage is not safe for concurrent use. Readers may share it across
// goroutines once it is built and as long as no goroutine modifies it.
package noc

import "fmt"

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

type gridLoc struct {
	x, y int
}

// Storage holds the routers and links of a NoC.
type Storage struct {
	noCopy noCopy

	routers []Router
	links   []Link

	// Outgoing links of each router, in insertion order. There is exactly
	// one entry per router.
	outgoing [][]LinkID

	// Routers are described with their own ids in the architecture file. This
	// table maps these ids to the RouterID assigned by the storage.
	userIDs map[int]RouterID

	// First router added at each grid location.
	gridLocs map[gridLoc]RouterID

	built bool
}

// NewStorage returns a new empty Storage ready to be built.
func NewStorage() *Storage {
	return &Storage{
		userIDs:  map[int]RouterID{},
		gridLocs: map[gridLoc]RouterID{},
	}
}

// AddRouter adds a router placed at grid location (x, y). The router is
// assigned the next RouterID and registered under userID so that it can later
// be found with ConvertRouterID.
//
// An error is returned if the storage is already built or if userID was
// already registered. The storage is left unchanged in both cases.
func (s *Storage) AddRouter(userID int, x int, y int) error {
	if s.built {
		return fmt.Errorf("cannot add router %d: %w", userID, ErrAlreadyBuilt)
	}
	if id, ok := s.userIDs[userID]; ok {
		return fmt.Errorf("router %d already registered as %d: %w", userID, id, ErrDuplicateRouter)
	}

	id := RouterID(len(s.routers))
	s.routers = append(s.routers, newRouter(userID, x, y))
	s.userIDs[userID] = id
	if _, ok := s.gridLocs[gridLoc{x, y}]; !ok {
		s.gridLocs[gridLoc{x, y}] = id
	}

	// Keep one adjacency entry per router even if ReserveAdjacency is called
	// before all routers are known.
	if len(s.outgoing) < len(s.routers) {
		s.outgoing = append(s.outgoing, nil)
	}
	return nil
}

// AddLink adds a directed link from source to sink and appends it to the
// outgoing links of source. Self-loops and links parallel to existing ones
// (same source and sink) are accepted.
//
// An error is returned if the storage is already built or if one of the
// endpoints is not a router of the storage. The storage is left unchanged in
// both cases.
func (s *Storage) AddLink(source RouterID, sink RouterID) error {
	if s.built {
		return fmt.Errorf("cannot add link %d -> %d: %w", source, sink, ErrAlreadyBuilt)
	}
	if !s.hasRouter(source) {
		return fmt.Errorf("link source %d: %w", source, ErrInvalidRouter)
	}
	if !s.hasRouter(sink) {
		return fmt.Errorf("link sink %d: %w", sink, ErrInvalidRouter)
	}

	id := LinkID(len(s.links))
	s.links = append(s.links, newLink(source, sink))
	s.outgoing[source] = append(s.outgoing[source], id)
	return nil
}

// ReserveAdjacency makes room in the adjacency index for n routers. It is
// meant to be called once the number of routers is known and before links are
// added. The index always holds exactly one entry per router, whatever the
// value of n.
func (s *Storage) ReserveAdjacency(n int) {
	if n < len(s.routers) {
		n = len(s.routers)
	}
	if cap(s.outgoing) < n {
		grown := make([][]LinkID, len(s.outgoing), n)
		copy(grown, s.outgoing)
		s.outgoing = grown
	}
	for len(s.outgoing) < len(s.routers) {
		s.outgoing = append(s.outgoing, nil)
	}
}

// FinishedBuilding locks the topology. Subsequent calls to AddRouter and
// AddLink fail with ErrAlreadyBuilt. Calling it more than once has no effect.
func (s *Storage) FinishedBuilding() {
	s.built = true
}

// IsBuilt returns true if FinishedBuilding was called since the storage was
// created or last cleared.
func (s *Storage) IsBuilt() bool {
	return s.built
}

// Clear removes all routers and links and unlocks the storage so that a new
// topology can be built. Identifiers are assigned from 0 again.
func (s *Storage) Clear() {
	s.routers = nil
	s.links = nil
	s.outgoing = nil
	s.userIDs = map[int]RouterID{}
	s.gridLocs = map[gridLoc]RouterID{}
	s.built = false
}

// NumRouters returns the number of routers in the NoC.
func (s *Storage) NumRouters() int {
	return len(s.routers)
}

// NumLinks returns the number of links in the NoC.
func (s *Storage) NumLinks() int {
	return len(s.links)
}

// Routers returns the routers of the NoC indexed by RouterID.
//
// Important: the slice is a view on the storage's internal table and should
// only be used in read-only operations. Use MutableRouter to update a router.
func (s *Storage) Routers() []Router {
	return s.routers[:len(s.routers):len(s.routers)]
}

// Links returns the links of the NoC indexed by LinkID.
//
// Important: the slice is a view on the storage's internal table and should
// only be used in read-only operations. Use MutableLink to update a link.
func (s *Storage) Links() []Link {
	return s.links[:len(s.links):len(s.links)]
}

// Router returns a copy of the router. It panics if id is not in the router
// table.
func (s *Storage) Router(id RouterID) Router {
	s.mustHaveRouter(id)
	return s.routers[id]
}

// MutableRouter returns the router so that its fields can be updated. It
// panics if id is not in the router table.
func (s *Storage) MutableRouter(id RouterID) *Router {
	s.mustHaveRouter(id)
	return &s.routers[id]
}

// Link returns a copy of the link. It panics if id is not in the link table.
func (s *Storage) Link(id LinkID) Link {
	s.mustHaveLink(id)
	return s.links[id]
}

// MutableLink returns the link so that its usage can be updated. It panics if
// id is not in the link table.
func (s *Storage) MutableLink(id LinkID) *Link {
	s.mustHaveLink(id)
	return &s.links[id]
}

// OutgoingLinks returns the links leaving the router, in the order they were
// added. It panics if id is not in the router table.
//
// Important: the slice is a view on the storage's adjacency index and should
// only be used in read-only operations.
func (s *Storage) OutgoingLinks(id RouterID) []LinkID {
	s.mustHaveRouter(id)
	out := s.outgoing[id]
	return out[:len(out):len(out)]
}

// ConvertRouterID returns the RouterID of the router registered under userID
// in the architecture description.
func (s *Storage) ConvertRouterID(userID int) (RouterID, error) {
	id, ok := s.userIDs[userID]
	if !ok {
		return InvalidRouterID, fmt.Errorf("router %d: %w", userID, ErrUnknownRouter)
	}
	return id, nil
}

// ParallelLink returns the link going in the opposite direction of the given
// link, that is from its sink back to its source. InvalidLinkID is returned if
// there is no such link. If several links qualify, the first one among the
// outgoing links of the sink is returned. A self-loop is its own parallel
// link unless another self-loop precedes it on the same router.
//
// It panics if id is not in the link table.
func (s *Storage) ParallelLink(id LinkID) LinkID {
	s.mustHaveLink(id)
	l := s.links[id]
	return s.SingleLink(l.sink, l.source)
}

// SingleLink returns the first link going from source to sink, in the order
// the outgoing links of source were added, or InvalidLinkID if the routers
// are not connected. It panics if source is not in the router table.
func (s *Storage) SingleLink(source RouterID, sink RouterID) LinkID {
	for _, e := range s.OutgoingLinks(source) {
		if s.links[e].sink == sink {
			return e
		}
	}
	return InvalidLinkID
}

func (s *Storage) hasRouter(id RouterID) bool {
	return 0 <= id && int(id) < len(s.routers)
}

func (s *Storage) mustHaveRouter(id RouterID) {
	if !s.hasRouter(id) {
		panic(fmt.Sprintf("noc: router %d out of range [0, %d)", id, len(s.routers)))
	}
}

func (s *Storage) mustHaveLink(id LinkID) {
	if id < 0 || len(s.links) <= int(id) {
		panic(fmt.Sprintf("noc: link %d out of range [0, %d)", id, len(s.links)))
	}
}
