package vector

// ElemSize returns the size in bytes of one slot.
func (v *Vector[T]) ElemSize() int {
	return elemSize[T]()
}

// SizeInUse returns the number of bytes occupied by live elements.
func (v *Vector[T]) SizeInUse() int {
	return v.length * elemSize[T]()
}

// CapacityBytes returns the size in bytes of the storage block.
func (v *Vector[T]) CapacityBytes() int {
	return len(v.data) * elemSize[T]()
}

// Utilization returns the ratio of live slots to total slots (0.0 to 1.0).
// Returns 0.0 if v has no storage.
func (v *Vector[T]) Utilization() float64 {
	if len(v.data) == 0 {
		return 0
	}
	return float64(v.length) / float64(len(v.data))
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:         v.Len(),
		Cap:         v.Cap(),
		ElemSize:    v.ElemSize(),
		SizeInUse:   v.SizeInUse(),
		Capacity:    v.CapacityBytes(),
		Utilization: v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len         int     `yaml:"len"`         // Live elements
	Cap         int     `yaml:"cap"`         // Slots in the storage block
	ElemSize    int     `yaml:"elem_size"`   // Bytes per slot
	SizeInUse   int     `yaml:"size_in_use"` // Bytes held by live elements
	Capacity    int     `yaml:"capacity"`    // Bytes in the storage block
	Utilization float64 `yaml:"utilization"` // Ratio of live to total slots (0.0-1.0)
}
