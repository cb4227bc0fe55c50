package vdf

import "sort"

// Node is either a Scalar or an Object.
type Node interface {
	isNode()
}

// Scalar is a quoted string value.
type Scalar string

// Object maps keys to nested nodes. Duplicate keys in the source collapse to
// the last occurrence.
type Object map[string]Node

func (Scalar) isNode() {}
func (Object) isNode() {}

// Get returns the node stored under key.
func (o Object) Get(key string) (Node, bool) {
	if o == nil {
		return nil, false
	}
	n, ok := o[key]
	return n, ok
}

// GetString returns the scalar stored under key. It reports false when the
// key is missing or holds an object.
func (o Object) GetString(key string) (string, bool) {
	n, ok := o.Get(key)
	if !ok {
		return "", false
	}
	s, ok := n.(Scalar)
	return string(s), ok
}

// GetObject returns the object stored under key. It reports false when the
// key is missing or holds a scalar.
func (o Object) GetObject(key string) (Object, bool) {
	n, ok := o.Get(key)
	if !ok {
		return nil, false
	}
	obj, ok := n.(Object)
	return obj, ok
}

// FirstString returns the first non-empty scalar among keys, in order.
func (o Object) FirstString(keys ...string) (string, bool) {
	for _, key := range keys {
		if s, ok := o.GetString(key); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// Keys returns the object's keys in lexical order.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
