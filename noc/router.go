package noc

// Router is a node of the NoC placed at a fixed position of the device grid.
type Router struct {
	userID int
	gridX  int
	gridY  int

	// Name of the logical router block mapped onto this physical router.
	// Empty until placement assigns one.
	designModuleRef string
}

func newRouter(userID int, x int, y int) Router {
	return Router{
		userID: userID,
		gridX:  x,
		gridY:  y,
	}
}

// UserID returns the identifier given to the router in the architecture
// description.
func (r Router) UserID() int {
	return r.userID
}

// GridX returns the column of the router on the device grid.
func (r Router) GridX() int {
	return r.gridX
}

// GridY returns the row of the router on the device grid.
func (r Router) GridY() int {
	return r.gridY
}

// DesignModuleRef returns the name of the design block mapped onto the
// router, or "" if none is.
func (r Router) DesignModuleRef() string {
	return r.designModuleRef
}

func (r *Router) SetDesignModuleRef(ref string) {
	r.designModuleRef = ref
}
