package payment

import (
	"github.com/innovationlabs/trackify/internal/payment/repository"
	"github.com/innovationlabs/trackify/internal/payment/service"
	"go.uber.org/fx"
)

var Module = fx.Module("payment.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
