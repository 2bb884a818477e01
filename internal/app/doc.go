// Package app assembles the pieces of the plugin suite into a runnable
// whole: logger, activation config, module registry and activator. It owns
// startup ordering and treats configuration failures as fatal.
package app
