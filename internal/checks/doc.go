// Package checks implements the rules as predicates over jsx elements.
//
// Every check answers for a single element and reports only what it can prove. Facts the
// analysis cannot settle statically, an attribute possibly coming from a spread or a role set by
// an expression, make a check stay silent. Heavy lifting lives in the semantics package, a check
// only picks the questions to ask.
//
// Checks with options decode them from the rule section of the configuration into a typed
// struct filled with defaults beforehand. Unknown keys are errors.
package checks
