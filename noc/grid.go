package noc

import "github.com/rhartert/yagh"

// RouterAt returns the router placed at grid location (x, y). If several
// routers share the location, the first one added is returned. The second
// returned value is false if there is no router at that location.
func (s *Storage) RouterAt(x int, y int) (RouterID, bool) {
	id, ok := s.gridLocs[gridLoc{x, y}]
	if !ok {
		return InvalidRouterID, false
	}
	return id, true
}

// ClosestRouters returns the k routers that are the closest to grid location
// (x, y) in terms of Manhattan distance, from the closest to the farthest.
// Routers at the same distance are ordered by RouterID. All the routers are
// returned if k is greater than the number of routers.
func (s *Storage) ClosestRouters(x int, y int, k int) []RouterID {
	n := len(s.routers)
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}

	// The RouterID is folded into the cost so that ties are popped in
	// increasing order of RouterID.
	h := yagh.New[int](n)
	for i, r := range s.routers {
		h.Put(i, manhattan(x, y, r.gridX, r.gridY)*n+i)
	}

	closest := make([]RouterID, 0, k)
	for len(closest) < k {
		closest = append(closest, RouterID(h.Pop().Elem))
	}
	return closest
}

func manhattan(x1 int, y1 int, x2 int, y2 int) int {
	return abs(x1-x2) + abs(y1-y2)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
