// Package model defines the form field model consumed by component renderers.
// A sketchpad field carries its component configuration in Config (keys match
// the persisted component schema, e.g. imageUrl, defaultStroke) and its value
// as the decoded shape list. UIHints holds renderer-facing directives such as
// cssClass, helpText and hideLabel.
package model
