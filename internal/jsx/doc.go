// Package jsx defines the static markup tree the analysis works on.
//
// The tree is what a JSX (or plain HTML) source looks like before it is rendered: elements with
// ordered attributes and ordered children, text runs, and expression holes whose value is not
// known statically. Frontends in internal/source produce it; internal/semantics classifies it.
//
// Nothing in this package evaluates code. An attribute value is either a literal, an expression
// the analysis does not look into, or a conditional of two literals, which is the one expression
// shape that is read.
//
// # Three-valued answers
//
// Many questions about a static tree have no definite answer: an attribute may be set by a
// spread, a child may be produced by an expression. Such answers are reported as Unknown and are
// never silently turned into "no".
package jsx
