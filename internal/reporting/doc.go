// Package reporting collects rule violations and renders them.
//
// Reports flow through phase-bound reporters: the parse phase records recovered syntax
// problems, the check phase records rule violations. Levels are applied on arrival, so rules
// configured off never produce reports.
package reporting
