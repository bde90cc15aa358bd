package invoice

import (
	"github.com/paperbill/paperbill/internal/invoice/repository"
	"github.com/paperbill/paperbill/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
