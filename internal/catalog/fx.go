package catalog

import (
	"github.com/innovationlabs/trackify/internal/catalog/repository"
	"github.com/innovationlabs/trackify/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
