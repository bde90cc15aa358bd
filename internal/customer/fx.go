package customer

import (
	"github.com/paperbill/paperbill/internal/customer/editor"
	"github.com/paperbill/paperbill/internal/customer/repository"
	"github.com/paperbill/paperbill/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
	fx.Provide(editor.NewManager),
)
