package template

import (
	"errors"
	"slices"

	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// ErrEmptyRegistry is returned when selecting from a registry with no templates.
var ErrEmptyRegistry = errors.New("template registry is empty")

// Registry holds templates by shape along with their selection weights.
// Selection walks templates in registration order, which keeps it
// reproducible for a given seed.
type Registry struct {
	order     []world.Shape
	templates map[world.Shape]Template
	weights   map[world.Shape]float64
	rand      *rng.Random
}

// NewRegistry creates an empty registry drawing from r.
func NewRegistry(r *rng.Random) *Registry {
	return &Registry{
		templates: make(map[world.Shape]Template),
		weights:   make(map[world.Shape]float64),
		rand:      r,
	}
}

// Register adds t with the given weight. Registering a shape again replaces
// its template and weight but keeps its position.
func (r *Registry) Register(t Template, weight float64) {
	shape := t.Shape()
	if _, ok := r.templates[shape]; !ok {
		r.order = append(r.order, shape)
	}
	r.templates[shape] = t
	r.weights[shape] = max(0, weight)
}

// Unregister removes the template for shape, if any.
func (r *Registry) Unregister(shape world.Shape) {
	if _, ok := r.templates[shape]; !ok {
		return
	}
	delete(r.templates, shape)
	delete(r.weights, shape)
	r.order = slices.DeleteFunc(r.order, func(s world.Shape) bool { return s == shape })
}

// Template returns the template registered for shape.
func (r *Registry) Template(shape world.Shape) (Template, bool) {
	t, ok := r.templates[shape]
	return t, ok
}

// Templates returns every registered template in registration order.
func (r *Registry) Templates() []Template {
	out := make([]Template, len(r.order))
	for i, shape := range r.order {
		out[i] = r.templates[shape]
	}
	return out
}

// SetWeight changes the weight of a registered shape. Unknown shapes are ignored.
func (r *Registry) SetWeight(shape world.Shape, weight float64) {
	if _, ok := r.templates[shape]; ok {
		r.weights[shape] = max(0, weight)
	}
}

// Weight returns the selection weight of shape, zero if it is not registered.
func (r *Registry) Weight(shape world.Shape) float64 {
	return r.weights[shape]
}

// Reset rewinds the selection stream to its seed.
func (r *Registry) Reset() { r.rand.Reset() }

// Len returns the number of registered templates.
func (r *Registry) Len() int { return len(r.order) }

// Select picks a template by roulette over the weights. If every weight is
// zero the first registered template wins.
func (r *Registry) Select() (Template, error) {
	if len(r.order) == 0 {
		return nil, ErrEmptyRegistry
	}

	total := 0.0
	for _, shape := range r.order {
		total += r.weights[shape]
	}

	roll := r.rand.NextFloat(0, total)
	for _, shape := range r.order {
		roll -= r.weights[shape]
		if roll <= 0 {
			return r.templates[shape], nil
		}
	}
	return r.templates[r.order[0]], nil
}

// MustSelect is Select for callers that registered templates themselves.
func (r *Registry) MustSelect() Template {
	t, err := r.Select()
	if err != nil {
		panic(err)
	}
	return t
}
