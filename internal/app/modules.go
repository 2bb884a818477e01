package app

import (
	"github.com/thoriumgroup/thorium/internal/registry"
	"github.com/thoriumgroup/thorium/modules/animatedsnap"
	"github.com/thoriumgroup/thorium/modules/cardtotrack"
	"github.com/thoriumgroup/thorium/modules/iconpanel"
	"github.com/thoriumgroup/thorium/modules/keying"
	"github.com/thoriumgroup/thorium/modules/viewersync"
)

// coreModules is the definitive list of all modules that are compiled into
// the thorium binary.
func coreModules(appConfig *AppConfig) []registry.Module {
	return []registry.Module{
		&animatedsnap.Module{},
		&cardtotrack.Module{Menu: appConfig.MenuName},
		&iconpanel.Module{IconDirs: appConfig.IconDirs},
		&keying.Module{},
		&viewersync.Module{},
	}
}
