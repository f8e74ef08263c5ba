package main

import (
	"github.com/innovationlabs/trackify/internal/clock"
	"github.com/innovationlabs/trackify/internal/config"
	"github.com/innovationlabs/trackify/internal/migration"
	"github.com/innovationlabs/trackify/internal/observability"
	"github.com/innovationlabs/trackify/internal/server"
	"github.com/innovationlabs/trackify/pkg/db"
	"github.com/innovationlabs/trackify/pkg/id"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(id.New),
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}
