package exact

// Func is a named primitive available to expressions through a context's
// library. A call consults the library only after user-defined function
// lookup fails; the name match is case-sensitive. The arguments arrive fully
// evaluated, in order, so a primitive cannot short-circuit: a conditional
// like if(c, a, b) receives both branches already computed. Implementations
// must behave as stateless pure functions; they have no access to the
// Context. Errors from a primitive surface to the caller unchanged.
//
// The funcs subpackage provides a complete library of primitives.
type Func func(args []*Number) (*Number, error)
