package noc

// Link is a directed connection from a source router to a sink router.
// Endpoints are fixed once the link is created, while the usage fields can
// be updated at any time through Storage.MutableLink.
type Link struct {
	source RouterID
	sink   RouterID

	bandwidthUsage float64
	nConnections   int
}

func newLink(source RouterID, sink RouterID) Link {
	return Link{
		source: source,
		sink:   sink,
	}
}

// Source returns the router the link leaves from.
func (l Link) Source() RouterID {
	return l.source
}

// Sink returns the router the link arrives at.
func (l Link) Sink() RouterID {
	return l.sink
}

// BandwidthUsage returns the bandwidth currently routed over the link.
func (l Link) BandwidthUsage() float64 {
	return l.bandwidthUsage
}

// NumConnections returns the number of traffic flows routed over the link.
func (l Link) NumConnections() int {
	return l.nConnections
}

func (l *Link) SetBandwidthUsage(bw float64) {
	l.bandwidthUsage = bw
}

func (l *Link) SetNumConnections(n int) {
	l.nConnections = n
}
