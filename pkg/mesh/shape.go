package mesh

// Shape is a parametric primitive descriptor that can build its mesh.
// Every call allocates fresh buffers owned solely by the caller.
type Shape interface {
	MeshData() (*Data, error)
}

// Build constructs the mesh for the given shape descriptor.
func Build(s Shape) (*Data, error) {
	return s.MeshData()
}
