package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/paperbill/paperbill/internal/config"
	"github.com/paperbill/paperbill/internal/logger"
	"github.com/paperbill/paperbill/internal/migration"
	"github.com/paperbill/paperbill/internal/server"
	"github.com/paperbill/paperbill/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
