// Package semantics resolves accessibility semantics of static markup trees.
//
// Everything starts from a Resolver built once per run out of a Config. The resolver is
// immutable and is shared by all goroutines checking files.
//
// # Element types
//
// Components are mapped to the markup they render with the component map: exact names first,
// then doublestar patterns in sorted order. A polymorphic attribute (`as` and the like) may
// override the tag beforehand. Components nobody mapped are Opaque and get conservative
// answers everywhere.
//
// # Roles
//
// The role attribute is a fallback list: the first valid non-abstract token wins. A literal
// with no valid token is Invalid and keeps its last token for messages and suggestions.
// A role set by an expression or possibly by a spread is Indeterminate, never Absent.
// Implicit roles come from element defaults adjusted by attributes (href on anchors, alt on
// images, type on inputs and so on).
//
// # Interactivity
//
// Classify produces one of Interactive, NonInteractive, Presentational and Indeterminate
// following a fixed check order, see Classify. The classification also carries the disabled
// and content editable states, which checks use as exemptions.
//
// # Accessible names
//
// FindAccessibleName walks the subtree breadth first with an explicit queue and a level budget
// (2 by default, never more than 25). Text counts unless it is blank or emoji only. Label
// attributes count with a non-empty literal. Descendants matching control component patterns
// are assumed to render a labelled control. Expression children never count unless the policy
// accepts conditionals of two literals; they are counted as unresolved instead so callers can
// tell an inconclusive search from a failed one.
package semantics
