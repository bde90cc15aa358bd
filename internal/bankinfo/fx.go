package bankinfo

import (
	"github.com/paperbill/paperbill/internal/bankinfo/repository"
	"github.com/paperbill/paperbill/internal/bankinfo/service"
	"go.uber.org/fx"
)

var Module = fx.Module("bankinfo.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
