package quadedge

import "fmt"

// ErrForeignEdge is returned when an EdgeRef produced by one Mesh is passed
// to a method of a different Mesh.
type ErrForeignEdge struct {
	Ref EdgeRef
}

func (e ErrForeignEdge) Error() string {
	return fmt.Sprintf("quadedge: edge %v does not belong to this mesh", e.Ref)
}
