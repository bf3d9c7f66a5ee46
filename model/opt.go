package model

import (
	yaml "gopkg.in/yaml.v3"
)

// Opt is an optional comparable value. Formats built from Opt fields stay
// comparable, so registries can deduplicate them with ==.
type Opt[T comparable] struct {
	val T
	set bool
}

// Some returns set optional.
func Some[T comparable](v T) Opt[T] {
	return Opt[T]{val: v, set: true}
}

func (o Opt[T]) Get() (T, bool) {
	return o.val, o.set
}

func (o Opt[T]) IsSet() bool {
	return o.set
}

// Value returns stored value or zero value of T when not set.
func (o Opt[T]) Value() T {
	return o.val
}

func (o Opt[T]) Or(def T) T {
	if o.set {
		return o.val
	}
	return def
}

// Over returns o when it is set, base otherwise.
func (o Opt[T]) Over(base Opt[T]) Opt[T] {
	if o.set {
		return o
	}
	return base
}

// Any returns stored value or nil when not set.
func (o Opt[T]) Any() any {
	if !o.set {
		return nil
	}
	return o.val
}

func (o *Opt[T]) UnmarshalYAML(node *yaml.Node) error {
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

func (o Opt[T]) MarshalYAML() (any, error) {
	return o.Any(), nil
}
