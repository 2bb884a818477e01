// Package activator selects and activates plugin modules for one host
// session. It runs twice per GUI session — a headless pass from the host's
// init script and a GUI pass from its menu script — and exactly once in
// batch. One module failing to register never stops the pass; the failure is
// logged and the remaining modules continue.
package activator

import (
	"context"
	"errors"
	"fmt"

	"github.com/thoriumgroup/thorium/internal/config"
	"github.com/thoriumgroup/thorium/internal/ctxlog"
	"github.com/thoriumgroup/thorium/internal/host"
	"github.com/thoriumgroup/thorium/internal/registry"
)

// ErrHeadlessGUI is returned when a GUI pass is requested in a batch session.
var ErrHeadlessGUI = errors.New("activator: GUI activation requires an interactive session")

// Plan returns the module names to activate, in registry order. A name is
// planned when the config maps it to true, or omits it and the default is
// true. Config keys naming no registered module select nothing.
func Plan(reg *registry.Registry, cfg config.Activation) []string {
	var planned []string
	for _, name := range reg.Names() {
		if cfg.Enabled(name) {
			planned = append(planned, name)
		}
	}
	return planned
}

// Activator runs activation passes against one session. It remembers what
// has already activated, so re-running a pass is a no-op for modules that
// succeeded before.
type Activator struct {
	reg *registry.Registry
	cfg config.Activation

	active map[string]bool
	gui    map[string]bool
	errs   map[string]error
}

// New returns an Activator for the given registry and config.
func New(reg *registry.Registry, cfg config.Activation) *Activator {
	return &Activator{
		reg:    reg,
		cfg:    cfg,
		active: make(map[string]bool),
		gui:    make(map[string]bool),
		errs:   make(map[string]error),
	}
}

// Run performs the headless activation pass: every planned module's Register
// is called with the session. Failures are isolated — logged as warnings,
// recorded, and skipped.
func (a *Activator) Run(ctx context.Context, session *host.Session) {
	logger := ctxlog.FromContext(ctx)
	for _, name := range Plan(a.reg, a.cfg) {
		if a.active[name] {
			continue
		}
		mod, ok := a.reg.Get(name)
		if !ok {
			// Plan only emits registered names.
			continue
		}
		if err := mod.Register(ctx, session); err != nil {
			a.errs[name] = err
			logger.Warn("Module failed to activate; skipping.", "module", name, "error", err)
			continue
		}
		delete(a.errs, name)
		a.active[name] = true
		logger.Debug("Module activated.", "module", name, "version", mod.Info().Version)
	}
}

// RunGUI performs the headless pass if it has not run, then registers menu
// entries for planned modules that contribute them. It refuses to run in a
// headless session.
func (a *Activator) RunGUI(ctx context.Context, session *host.Session) error {
	if !session.Interactive() {
		return ErrHeadlessGUI
	}
	a.Run(ctx, session)

	logger := ctxlog.FromContext(ctx)
	for _, name := range Plan(a.reg, a.cfg) {
		if !a.active[name] || a.gui[name] {
			continue
		}
		mod, _ := a.reg.Get(name)
		guiMod, ok := mod.(registry.GUIModule)
		if !ok {
			continue
		}
		if err := guiMod.RegisterGUI(ctx, session); err != nil {
			a.errs[name] = fmt.Errorf("gui registration: %w", err)
			logger.Warn("Module failed GUI registration; skipping.", "module", name, "error", err)
			continue
		}
		a.gui[name] = true
		logger.Debug("Module menus registered.", "module", name)
	}
	return nil
}

// Active returns whether the named module activated this session.
func (a *Activator) Active(name string) bool { return a.active[name] }

// ActiveModules returns the activated module names in registry order.
func (a *Activator) ActiveModules() []string {
	var out []string
	for _, name := range a.reg.Names() {
		if a.active[name] {
			out = append(out, name)
		}
	}
	return out
}

// Errors returns the per-module failures from the most recent passes.
func (a *Activator) Errors() map[string]error {
	out := make(map[string]error, len(a.errs))
	for name, err := range a.errs {
		out[name] = err
	}
	return out
}

// Err aggregates all recorded failures into one error, nil when clean.
func (a *Activator) Err() error {
	if len(a.errs) == 0 {
		return nil
	}
	joined := make([]error, 0, len(a.errs))
	for _, name := range a.reg.Names() {
		if err, ok := a.errs[name]; ok {
			joined = append(joined, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(joined...)
}
