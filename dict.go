// github.com/dcoppa/psi
// Copyright (c) 2026 the psi authors
//
// Licensed under the MIT License. See the LICENSE file in the
// repository root for details.

package psi

import (
	"sort"

	"golang.org/x/exp/maps"
)

// dictionary is the mutable cell a Dict handle points into.
type dictionary struct {
	entries map[string]Value
	maxlen  int
}

// Dict is a handle onto a shared mutable name→value mapping with a
// declared maximum capacity. Two Dict values may point at the same
// dictionary (e.g. both the operand stack and the dictionary stack, after
// "begin"); "def" through either is visible through both. Dict's
// identity is its pointer, so "eq"/"ne" on two dictionaries is a plain
// pointer comparison — no content hashing, no sentinel-key trick.
type Dict struct {
	d *dictionary
}

// NewDict creates an empty dictionary with the given capacity.
func NewDict(maxlen int) Dict {
	return Dict{d: &dictionary{entries: make(map[string]Value, maxlen), maxlen: maxlen}}
}

// Len reports the number of key/value pairs currently stored.
func (d Dict) Len() int { return len(d.d.entries) }

// Maxlen reports the dictionary's declared capacity.
func (d Dict) Maxlen() int { return d.d.maxlen }

// Get looks up name directly in this dictionary (no walk up any stack).
func (d Dict) Get(name string) (Value, bool) {
	v, ok := d.d.entries[name]
	return v, ok
}

// Def inserts or replaces the value bound to name. Replacing an existing
// key never changes Len(); inserting a new key when Len() == Maxlen()
// fails with dictfull.
func (d Dict) Def(name string, v Value) error {
	if _, exists := d.d.entries[name]; !exists && len(d.d.entries) >= d.d.maxlen {
		return newError(eDictfull, "dict is full (maxlength %d)", d.d.maxlen)
	}
	d.d.entries[name] = v
	return nil
}

// Delete removes a key, if present. No operator in this package calls it.
func (d Dict) Delete(name string) { delete(d.d.entries, name) }

// Keys returns the dictionary's keys in a stable, sorted order, so that
// forall and dictionary copy are deterministic despite Go's randomized
// map iteration order.
func (d Dict) Keys() []string {
	keys := maps.Keys(d.d.entries)
	sort.Strings(keys)
	return keys
}

// SameDict reports whether a and b are handles onto the same dictionary.
func SameDict(a, b Dict) bool { return a.d == b.d }

// copyInto copies every entry of d into dst, honoring dst's capacity.
func (d Dict) copyInto(dst Dict) error {
	for _, k := range d.Keys() {
		v, _ := d.Get(k)
		if err := dst.Def(k, v); err != nil {
			return err
		}
	}
	return nil
}
