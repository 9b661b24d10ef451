// Package exact implements an arbitrary-precision arithmetic expression
// language with variables and user-defined functions.
//
// Expressions are ordinary calculator notation: "2 + 3*4", "2^3^4" (which is
// right-associative), "5!", "2(3+4)" and "2x" (implicit multiplication).
// Integers are arbitrary precision and stay exact for as long as possible:
// dividing two integers yields an exact rational, and only contact with a
// float literal collapses a value to an IEEE double. Complex results arise
// from fractional powers and from primitives like sqrt of a negative number.
//
// "x = 12" assigns a variable and "f(a, b) = a*b + x" defines a function.
// Scoping is dynamic: a variable reference searches the call chain from the
// innermost scope outward, and assignment updates the first binding it finds
// anywhere in the chain. Function parameters always shadow outer bindings.
//
// Named primitives (sin, mean, fv, ...) are not part of this package. They
// are supplied to a Context as a Library map; the funcs subpackage provides
// a full set.
package exact
