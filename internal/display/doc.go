package display

// Package display maps a weather record to the text shown on screen. It has
// no UI dependency: the view applies the returned Fields to its widgets.
