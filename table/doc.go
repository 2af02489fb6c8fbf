// Package table defines the narrow capability surface tabjson needs from a
// tabular-data library: labeled indexes, labeled vectors, two-dimensional
// tables, and typed n-dimensional arrays.
//
// # Core Types
//
//   - [Index]: a named, ordered sequence of labels.
//   - [Vector]: a named one-dimensional series with its own index.
//   - [Table]: a two-dimensional labeled table made of named columns.
//   - [Array]: a typed, possibly multi-dimensional, row-major buffer.
//
// Nothing in this package knows about JSON. A type that implements these
// interfaces can be encoded by tabjson without depending on it; tabjson in
// turn never assumes anything about a concrete table implementation beyond
// what these interfaces expose. [Frame], [Series], [Index] (via [NewIndex])
// and [NewArray] are reference implementations good enough to use directly
// or to model a real adapter on.
package table
