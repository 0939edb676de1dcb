// Package startup owns process bootstrap: environment configuration, the
// startup banner and sectioned startup/shutdown logging, and build metadata
// injected at link time.
package startup
