package app

import (
	"context"

	"github.com/thoriumgroup/thorium/internal/host"
)

// Run performs the activation passes against a fresh session and returns it.
// Headless activation always happens; the GUI pass runs only when the app is
// configured interactive. Individual module failures are contained by the
// activator and reported through it, not returned here.
func (a *App) Run(ctx context.Context) (*host.Session, error) {
	ctx = a.Context(ctx)
	a.logger.Debug("App.Run method started.")

	mode := host.Headless
	if a.appConfig.GUI {
		mode = host.Interactive
	}
	session := host.NewSession(mode)

	if mode == host.Interactive {
		if err := a.activator.RunGUI(ctx, session); err != nil {
			session.Close()
			return nil, err
		}
	} else {
		a.activator.Run(ctx, session)
	}

	a.logger.Info("Activation finished.",
		"mode", mode.String(),
		"active", a.activator.ActiveModules(),
		"failed", len(a.activator.Errors()))
	a.logger.Debug("App.Run method finished.")
	return session, nil
}
