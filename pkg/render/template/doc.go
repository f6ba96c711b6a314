// Package template defines the template engine contract component renderers
// depend on. The gotemplate subpackage implements it on pongo2.
package template
