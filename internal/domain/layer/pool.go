package layer

// Pool is the shrinking working copy of the catalog the builder draws from.
// It is owned by exactly one builder run; other layers only ever see the
// read-only slice view for the duration of a single call.
type Pool struct {
	layers []Layer
}

// NewPool copies the given layers into a fresh pool, leaving the source
// slice untouched for the rest of the run.
func NewPool(layers []Layer) *Pool {
	cp := make([]Layer, len(layers))
	copy(cp, layers)
	return &Pool{layers: cp}
}

// Len returns the number of layers still in the pool.
func (p *Pool) Len() int { return len(p.layers) }

// Layers returns a read-only view of the remaining layers. Callers must not
// mutate the returned slice.
func (p *Pool) Layers() []Layer { return p.layers }

// Remove deletes the layer with the given identity from the pool and reports
// whether it was present. Order of the remaining layers is preserved so
// selection stays uniform over catalog order.
func (p *Pool) Remove(l Layer) bool {
	for i := range p.layers {
		if p.layers[i].Name() == l.Name() {
			p.layers = append(p.layers[:i], p.layers[i+1:]...)
			return true
		}
	}
	return false
}
