// Package capability computes the capability profile of Go runtime types.
//
// A profile is the set of identifiers a value of a given dynamic type can be
// judged compatible with:
//
//   - the type itself (pointer types are reduced to their element type)
//   - every struct type it embeds, recursively (its "ancestors")
//   - every registered interface type the dynamic type implements
//
// Go has no way to enumerate the interfaces a type implements, so the
// interfaces that take part in profiles must be registered on a Table:
//
//	capability.Register(capability.Interface[io.Reader](), capability.Interface[io.Closer]())
//
// Profiles are computed once per distinct type and cached. Lenient vectors
// narrow their accepted profile by intersecting it with the profile of every
// object they admit.
package capability
