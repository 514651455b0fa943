// Package rjson implements a small in-memory document tree for a
// permissive, JSON-like text format, together with the lexer and
// recursive-descent parser that build it.
//
// The format is a JSON superset:
//
//   - C-style // line and /* block */ comments, attached as metadata to
//     the value that follows them
//   - single- or double-quoted string literals
//   - the bare literals null, undefined, true and false
//   - trailing commas in arrays and objects
//
// # Data Model
//
// Every node is a *Value carrying a Kind discriminator:
//
// Scalars:    undefined, null, bool, int, double, string
// Containers: array (ordered), object (ordered, name-indexed)
//
// Object members keep their insertion order, which is also the render
// order. Reading a missing member via Get returns a shared undefined
// placeholder; Member auto-inserts an undefined member instead, matching
// mutable index access.
//
// Every value may carry a free-text comment. Comments are metadata only:
// they never affect equality or rendered output.
//
// # Rendering
//
// String and Render produce the canonical text form: undefined, Null,
// true/false, decimal numbers, double-quoted strings, [a, b, c] and
// {"k" : v}. The canonical form is not strict JSON (undefined and Null
// are non-standard); use EncodeJSON for interchange.
//
// Values are not internally synchronized. Concurrent use of the same
// tree requires external locking, in particular because Member grows the
// object on a miss.
package rjson
