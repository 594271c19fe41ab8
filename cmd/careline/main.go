package main

import (
	"github.com/meridianmobile/careline/internal/clock"
	"github.com/meridianmobile/careline/internal/config"
	"github.com/meridianmobile/careline/internal/embedding"
	"github.com/meridianmobile/careline/internal/idgen"
	"github.com/meridianmobile/careline/internal/server"
	"github.com/meridianmobile/careline/internal/store"
	"github.com/meridianmobile/careline/pkg/log"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		log.Module,
		clock.Module,
		store.Module,
		idgen.Module,
		embedding.Module,

		// HTTP surface plus every feature module it serves.
		server.Module,
	)
	app.Run()
}
