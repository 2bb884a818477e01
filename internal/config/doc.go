// Package config defines the per-session activation configuration: which
// plugin modules load, and the fallback for modules the config does not
// mention. The config is built once at session start, from an HCL file, the
// environment, or directly in code, and never mutated afterwards.
package config
