// SPDX-License-Identifier: MIT

package core

// Keyer is satisfied by every canonical product type: the string form is the
// product's unique, stable identity and doubles as its hash key.
type Keyer interface {
	String() string
}

// Term pairs a product key with its complex coefficient.
type Term[K Keyer] struct {
	Key   K
	Value complex128
}

// Coefficients is an insertion-ordered map from a canonical product to a
// complex coefficient. It is the storage shared by every operator container.
//
// Invariant: no entry carries an exactly-zero coefficient. Set with a zero
// value removes the entry; Add that sums to zero removes it too.
//
// Not safe for concurrent use.
type Coefficients[K Keyer] struct {
	order []string
	items map[string]Term[K]
}

// NewCoefficients returns an empty coefficient map.
func NewCoefficients[K Keyer]() *Coefficients[K] {
	return &Coefficients[K]{items: make(map[string]Term[K])}
}

// Len returns the number of stored terms.
func (c *Coefficients[K]) Len() int { return len(c.items) }

// Get returns the coefficient stored for key, or zero when absent.
func (c *Coefficients[K]) Get(key K) complex128 {
	return c.items[key.String()].Value
}

// Contains reports whether key has a stored (nonzero) coefficient.
func (c *Coefficients[K]) Contains(key K) bool {
	_, ok := c.items[key.String()]
	return ok
}

// Set stores value for key, overwriting any previous coefficient.
// A zero value removes the entry instead.
func (c *Coefficients[K]) Set(key K, value complex128) {
	if IsZero(value) {
		c.Remove(key)
		return
	}
	id := key.String()
	if _, ok := c.items[id]; !ok {
		c.order = append(c.order, id)
	}
	c.items[id] = Term[K]{Key: key, Value: value}
}

// Add sums value into the coefficient stored for key, removing the entry
// when the sum vanishes.
func (c *Coefficients[K]) Add(key K, value complex128) {
	id := key.String()
	prev, ok := c.items[id]
	if !ok {
		if IsZero(value) {
			return
		}
		c.order = append(c.order, id)
		c.items[id] = Term[K]{Key: key, Value: value}
		return
	}
	sum := prev.Value + value
	if IsZero(sum) {
		delete(c.items, id)
		c.dropFromOrder(id)
		return
	}
	c.items[id] = Term[K]{Key: key, Value: sum}
}

// Remove deletes the entry for key, if present.
func (c *Coefficients[K]) Remove(key K) {
	id := key.String()
	if _, ok := c.items[id]; !ok {
		return
	}
	delete(c.items, id)
	c.dropFromOrder(id)
}

// Terms returns all stored terms in insertion order.
func (c *Coefficients[K]) Terms() []Term[K] {
	out := make([]Term[K], 0, len(c.items))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// Keys returns all stored keys in insertion order.
func (c *Coefficients[K]) Keys() []K {
	out := make([]K, 0, len(c.items))
	for _, id := range c.order {
		out = append(out, c.items[id].Key)
	}
	return out
}

// Scale multiplies every stored coefficient by factor. Scaling by zero
// empties the map.
func (c *Coefficients[K]) Scale(factor complex128) {
	if IsZero(factor) {
		c.order = nil
		c.items = make(map[string]Term[K])
		return
	}
	for id, t := range c.items {
		t.Value *= factor
		c.items[id] = t
	}
}

// Clone returns an independent copy.
func (c *Coefficients[K]) Clone() *Coefficients[K] {
	out := &Coefficients[K]{
		order: append([]string(nil), c.order...),
		items: make(map[string]Term[K], len(c.items)),
	}
	for id, t := range c.items {
		out.items[id] = t
	}
	return out
}

func (c *Coefficients[K]) dropFromOrder(id string) {
	for i, o := range c.order {
		if o == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
