package lookup

// Package lookup runs weather lookups off the UI goroutine. Each lookup gets
// its own goroutine and a sequence number; results superseded by a newer
// lookup are dropped instead of being delivered to the update callback.
