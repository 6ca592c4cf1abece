// Package viewer holds the state of the name viewer: the loaded names, which
// of them have been searched, the current filter query and the text of the
// last search result.
//
// App is the single owner of that state. Presentation layers read it through
// Snapshot and learn about changes by subscribing; they never mutate it
// directly. Rows are derived from the state by the pure BuildRows function.
package viewer
