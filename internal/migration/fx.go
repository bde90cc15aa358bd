package migration

import (
	bankinfodomain "github.com/paperbill/paperbill/internal/bankinfo/domain"
	"github.com/paperbill/paperbill/internal/config"
	customerdomain "github.com/paperbill/paperbill/internal/customer/domain"
	invoicedomain "github.com/paperbill/paperbill/internal/invoice/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType != "postgres" {
			// Embedded SQL targets postgres; other dialects are for
			// local development and take the model schema directly.
			return conn.AutoMigrate(
				&customerdomain.Customer{},
				&invoicedomain.Invoice{},
				&bankinfodomain.BankInfo{},
			)
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		return RunMigrations(sqlDB)
	}),
)
