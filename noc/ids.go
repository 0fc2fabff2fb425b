package noc

// RouterID is the dense, zero-based identifier assigned to a router when it
// is added to a Storage. It is unrelated to the identifier used for the same
// router in the architecture description (see Storage.ConvertRouterID).
type RouterID int

// LinkID is the dense, zero-based identifier assigned to a link when it is
// added to a Storage.
type LinkID int

const (
	// InvalidRouterID represents a router that does not exist in the NoC.
	InvalidRouterID RouterID = -1

	// InvalidLinkID represents a link that does not exist in the NoC.
	InvalidLinkID LinkID = -1
)

// IsValid returns true if the id is not a sentinel value. It does not check
// that the router exists in a particular Storage.
func (id RouterID) IsValid() bool {
	return id >= 0
}

// IsValid returns true if the id is not a sentinel value. It does not check
// that the link exists in a particular Storage.
func (id LinkID) IsValid() bool {
	return id >= 0
}
