package model

// Package model defines domain data structures used across the app: the
// weather record decoded from the provider, lookup results handed to the UI,
// and the temperature display state with its unit toggle.
