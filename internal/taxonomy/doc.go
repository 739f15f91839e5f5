// Package taxonomy holds the static accessibility tables: WAI-ARIA roles with their
// superclass graph and supported properties, ARIA attribute value types, default semantics of
// HTML elements and DOM event handler groups.
//
// Tables are plain maps filled at package initialization, derived closures (transitive
// superclasses, inherited properties) are computed once in init and never change afterwards.
// Every function here is safe for concurrent use.
//
// The role set follows WAI-ARIA 1.2 with the DPUB and Graphics modules. A few superclass
// choices differ from the recommendation text where the recommendation makes a role
// conditionally a widget:
//
//	progressbar  range
//	separator    structure
//	toolbar      group
//
// so that none of them counts as interactive on its own.
package taxonomy
