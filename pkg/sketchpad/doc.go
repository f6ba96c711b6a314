// Package sketchpad implements the headless engine behind the sketchpad form
// component: it calibrates a logical drawing space from a background image,
// converts device pointer events into logical coordinates, drives the active
// drawing mode through each gesture, and keeps the shape list with its undo
// and redo history. Hosts render what the engine produces through the Surface
// and Container contracts and receive value changes through WithOnChange.
//
// Drawing modes are plug-ins registered in a Registry; the built-in set lives
// in pkg/sketchpad/modes and is wired by the root package constructors.
package sketchpad
