package typestate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/hupe1980/strictvec/capability"
)

// State is the type a vector is currently bound to.
//
// Class is set for vectors that require an exact object type. Caps is set for
// vectors that narrow a capability set across admitted objects. Both are only
// meaningful when Kind is KindObject.
type State struct {
	Kind  Kind
	Class reflect.Type
	Caps  capability.Set
}

// Unbound returns a state that binds on first use.
func Unbound() State {
	return State{Kind: KindUnbound}
}

// Bound returns a state fixed to kind k.
func Bound(k Kind) State {
	return State{Kind: k}
}

// BoundClass returns an object state fixed to the exact type t.
func BoundClass(t reflect.Type) State {
	return State{Kind: KindObject, Class: t}
}

// IsBound reports whether the state has been bound.
func (s State) IsBound() bool {
	return s.Kind != KindUnbound
}

// Clone returns a copy that shares nothing mutable with s.
func (s State) Clone() State {
	s.Caps = s.Caps.Clone()
	return s
}

func (s State) String() string {
	switch {
	case s.Kind != KindObject:
		return s.Kind.String()
	case s.Class != nil:
		return fmt.Sprintf("object(%s)", s.Class)
	case s.Caps != nil:
		return fmt.Sprintf("object{%s}", strings.Join(s.Caps.Names(), ", "))
	default:
		return s.Kind.String()
	}
}
