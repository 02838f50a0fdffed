package testutil

import "reflect"

// Named is implemented by Alpha and Beta.
type Named interface {
	Name() string
}

// Sized is implemented by Alpha, Beta and Gamma.
type Sized interface {
	Size() int
}

// Tagged is implemented by Delta.
type Tagged interface {
	Tag() string
}

// Base is embedded by Alpha and Beta.
type Base struct {
	ID int
}

// Alpha is a fixture embedding Base and implementing Named and Sized.
type Alpha struct {
	Base
	Label string
}

func (a *Alpha) Name() string { return a.Label }
func (a *Alpha) Size() int    { return len(a.Label) }

// Beta is a fixture embedding Base and implementing Named and Sized.
type Beta struct {
	Base
	Count int
}

func (b *Beta) Name() string { return "beta" }
func (b *Beta) Size() int    { return b.Count }

// Gamma implements Sized only.
type Gamma struct {
	N int
}

func (g *Gamma) Size() int { return g.N }

// Delta implements Tagged only.
type Delta struct {
	Value string
}

func (d *Delta) Tag() string { return d.Value }

// FixtureInterfaces returns the interface types implemented by the fixtures.
func FixtureInterfaces() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[Named](),
		reflect.TypeFor[Sized](),
		reflect.TypeFor[Tagged](),
	}
}
