package donation

import (
	"github.com/innovationlabs/trackify/internal/donation/repository"
	"github.com/innovationlabs/trackify/internal/donation/service"
	"go.uber.org/fx"
)

var Module = fx.Module("donation.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
