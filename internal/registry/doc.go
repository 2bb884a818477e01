// Package registry holds the master list of plugin modules compiled into the
// binary. Modules are registered once at startup from a static table, so the
// set of known names is fixed before any configuration is read; activation
// then selects from that set. There is no runtime lookup of module code by
// string: a name either has a compiled module behind it or it does not.
package registry
