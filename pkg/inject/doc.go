// Package inject builds synthetic keyboard and mouse events from a single
// event source and posts them to processes by pid. On macOS the Quartz
// CGEventPostToPid facility performs the delivery; every platform can use the
// in-memory Recorder for dry runs and tests.
package inject
