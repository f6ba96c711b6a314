// Package orchestrator wires a component definition and its stored value to
// an output: rendered markup through a renderer registry, or an SVG, PNG or
// PDF export over the loaded background.
package orchestrator
