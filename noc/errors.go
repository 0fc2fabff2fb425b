package noc

import "errors"

var (
	// ErrAlreadyBuilt indicates a structural change after FinishedBuilding.
	ErrAlreadyBuilt = errors.New("noc: storage is already built")
	// ErrDuplicateRouter indicates a user router id registered twice.
	ErrDuplicateRouter = errors.New("noc: duplicate router id")
	// ErrUnknownRouter indicates a user router id that was never registered.
	ErrUnknownRouter = errors.New("noc: unknown router id")
	// ErrInvalidRouter indicates a RouterID outside of the router table.
	ErrInvalidRouter = errors.New("noc: router does not exist")
)
