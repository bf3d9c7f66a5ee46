// Package registry implements append-only resource tables (colors, fonts,
// styles, lists...) mapping caller chosen aliases to stable positional
// indices. Structurally equal values share a single entry.
package registry

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNotFound is returned (wrapped) when alias is not registered.
var ErrNotFound = errors.New("not found")

// NotFoundError carries the registry prefix and the alias that failed lookup.
type NotFoundError struct {
	Registry string
	Alias    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s registry: alias %q not found", e.Registry, e.Alias)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// Entry is a single registered value. Index is assigned in first registration
// order and never changes.
type Entry[T any] struct {
	Alias string
	Index int
	Value T
}

// Registry maps aliases to entries. Several aliases may point to the same
// entry. NOTE: not to be used concurrently.
type Registry[T any] struct {
	name    string
	prefix  string
	equal   func(a, b T) bool
	values  []T
	primary []string       // first alias of each entry, by index
	aliases map[string]int // alias -> index
	order   []string       // all aliases in registration order
}

// New creates empty registry. Generated aliases are prefix followed by a
// number, equal decides structural deduplication.
func New[T any](name, prefix string, equal func(a, b T) bool) *Registry[T] {
	return &Registry[T]{
		name:    name,
		prefix:  prefix,
		equal:   equal,
		aliases: make(map[string]int),
	}
}

// Comparable is equality for value types.
func Comparable[T comparable](a, b T) bool {
	return a == b
}

// Distinct never considers two values equal - every registration produces a
// new entry.
func Distinct[T any](_, _ T) bool {
	return false
}

// Register adds value under alias and returns the alias. When alias is empty
// a new one is generated. When value is structurally equal to an already
// registered value the existing index is reused and alias is added as another
// key for it. Registering a known alias replaces the value of its entry in
// place when the alias is the only key of that entry, otherwise the alias is
// moved to an equal entry or to a new one and other aliases keep their value.
func (r *Registry[T]) Register(value T, alias string) string {
	if idx, ok := r.aliases[alias]; ok && alias != "" {
		r.reassign(idx, value, alias)
		return alias
	}

	idx := -1
	for i := range r.values {
		if r.equal(r.values[i], value) {
			idx = i
			break
		}
	}

	if alias == "" {
		if idx >= 0 {
			// nothing new to remember, hand out primary name
			return r.primary[idx]
		}
		alias = r.generateAlias()
	}

	if idx < 0 {
		idx = len(r.values)
		r.values = append(r.values, value)
		r.primary = append(r.primary, alias)
	}
	r.aliases[alias] = idx
	r.order = append(r.order, alias)
	return alias
}

func (r *Registry[T]) reassign(idx int, value T, alias string) {
	shared := r.AliasesOf(idx)
	if len(shared) == 1 {
		r.values[idx] = value
		return
	}
	if r.equal(r.values[idx], value) {
		return
	}

	target := -1
	for i := range r.values {
		if i != idx && r.equal(r.values[i], value) {
			target = i
			break
		}
	}
	if target < 0 {
		target = len(r.values)
		r.values = append(r.values, value)
		r.primary = append(r.primary, alias)
	}
	r.aliases[alias] = target

	if r.primary[idx] == alias {
		for _, a := range shared {
			if a != alias {
				r.primary[idx] = a
				break
			}
		}
	}
}

func (r *Registry[T]) generateAlias() string {
	for n := len(r.values) + 1; ; n++ {
		alias := r.prefix + strconv.Itoa(n)
		if _, taken := r.aliases[alias]; !taken {
			return alias
		}
	}
}

// Get returns entry for alias.
func (r *Registry[T]) Get(alias string) (Entry[T], error) {
	idx, ok := r.aliases[alias]
	if !ok {
		return Entry[T]{}, &NotFoundError{Registry: r.name, Alias: alias}
	}
	return Entry[T]{Alias: alias, Index: idx, Value: r.values[idx]}, nil
}

// Index returns positional index of alias or -1.
func (r *Registry[T]) Index(alias string) int {
	if idx, ok := r.aliases[alias]; ok {
		return idx
	}
	return -1
}

// Has checks if alias is registered.
func (r *Registry[T]) Has(alias string) bool {
	_, ok := r.aliases[alias]
	return ok
}

// Len returns number of distinct entries.
func (r *Registry[T]) Len() int {
	return len(r.values)
}

// Entries returns distinct entries in index order, each under its first
// alias.
func (r *Registry[T]) Entries() []Entry[T] {
	out := make([]Entry[T], len(r.values))
	for i := range r.values {
		out[i] = Entry[T]{Alias: r.primary[i], Index: i, Value: r.values[i]}
	}
	return out
}

// Aliases returns all aliases in registration order.
func (r *Registry[T]) Aliases() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// AliasesOf returns all aliases pointing to the entry with given index.
func (r *Registry[T]) AliasesOf(index int) []string {
	var out []string
	for _, a := range r.order {
		if r.aliases[a] == index {
			out = append(out, a)
		}
	}
	return out
}

// Name returns registry name used in error messages.
func (r *Registry[T]) Name() string {
	return r.name
}

// CopyFrom replaces registry content with a deep copy of other, indices
// are preserved. clone may be nil for plain value types.
func (r *Registry[T]) CopyFrom(other *Registry[T], clone func(T) T) {
	r.name, r.prefix, r.equal = other.name, other.prefix, other.equal

	r.values = make([]T, len(other.values))
	for i, v := range other.values {
		if clone != nil {
			v = clone(v)
		}
		r.values[i] = v
	}
	r.primary = append([]string(nil), other.primary...)
	r.order = append([]string(nil), other.order...)
	r.aliases = make(map[string]int, len(other.aliases))
	for k, v := range other.aliases {
		r.aliases[k] = v
	}
}

// MustGet is Get for aliases known to exist, it panics otherwise.
func (r *Registry[T]) MustGet(alias string) Entry[T] {
	e, err := r.Get(alias)
	if err != nil {
		panic(err)
	}
	return e
}
