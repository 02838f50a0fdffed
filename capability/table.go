package capability

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// ErrNotInterface is returned when registering a non-interface type.
var ErrNotInterface = errors.New("capability: not an interface type")

// Default is the process-wide table used when no table is configured.
var Default = NewTable()

// Interface returns the reflect.Type of the interface type I.
func Interface[I any]() reflect.Type {
	return reflect.TypeFor[I]()
}

// Register adds interfaces to the Default table.
func Register(ifaces ...reflect.Type) error {
	return Default.Register(ifaces...)
}

// Table caches capability profiles per runtime type.
// It is safe for concurrent use.
type Table struct {
	mu       sync.RWMutex
	ifaces   []reflect.Type
	profiles map[reflect.Type]Set
}

// NewTable creates a table with the given interfaces registered.
// It panics if any of them is not an interface type.
func NewTable(ifaces ...reflect.Type) *Table {
	t := &Table{
		profiles: make(map[reflect.Type]Set),
	}
	if err := t.Register(ifaces...); err != nil {
		panic(err)
	}
	return t
}

// Register adds interface types to the table. Already registered interfaces
// are ignored. Registration invalidates cached profiles.
func (t *Table) Register(ifaces ...reflect.Type) error {
	for _, iface := range ifaces {
		if iface == nil || iface.Kind() != reflect.Interface {
			return fmt.Errorf("%w: %v", ErrNotInterface, iface)
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	added := false
	for _, iface := range ifaces {
		known := false
		for _, have := range t.ifaces {
			if have == iface {
				known = true
				break
			}
		}
		if !known {
			t.ifaces = append(t.ifaces, iface)
			added = true
		}
	}
	if added {
		clear(t.profiles)
	}
	return nil
}

// Interfaces returns the registered interface types in registration order.
func (t *Table) Interfaces() []reflect.Type {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]reflect.Type(nil), t.ifaces...)
}

// Profile returns the capability profile of typ. The returned set is shared
// with the cache and must not be modified; Clone it first.
func (t *Table) Profile(typ reflect.Type) Set {
	t.mu.RLock()
	p, ok := t.profiles[typ]
	t.mu.RUnlock()
	if ok {
		return p
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if p, ok := t.profiles[typ]; ok {
		return p
	}
	p = t.build(typ)
	t.profiles[typ] = p
	return p
}

// build must be called with t.mu held.
func (t *Table) build(typ reflect.Type) Set {
	p := make(Set)
	base := deref(typ)
	p[base] = struct{}{}
	addAncestors(p, base)

	for _, iface := range t.ifaces {
		if typ.Implements(iface) {
			p[iface] = struct{}{}
		}
	}
	return p
}

func addAncestors(p Set, typ reflect.Type) {
	if typ.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.Anonymous {
			continue
		}
		ft := deref(f.Type)
		if _, seen := p[ft]; seen {
			continue
		}
		p[ft] = struct{}{}
		addAncestors(p, ft)
	}
}

func deref(typ reflect.Type) reflect.Type {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return typ
}
