package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/securelogin/internal/accounts"
	"github.com/dmitrijs2005/securelogin/internal/buildinfo"
	"github.com/dmitrijs2005/securelogin/internal/client/cli"
	"github.com/dmitrijs2005/securelogin/internal/client/client"
	"github.com/dmitrijs2005/securelogin/internal/client/config"
	"github.com/dmitrijs2005/securelogin/internal/logging"
	"github.com/dmitrijs2005/securelogin/internal/store"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, logging.FormatText)

	var (
		svc  accounts.Service
		opts []cli.Option
	)

	if cfg.Remote() {
		c, err := client.NewGRPCClient(cfg.ServerEndpointAddr, cfg.RequestTimeout)
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer c.Close()
		svc = c
		opts = append(opts, cli.WithOnlineCheck(c, cfg.OnlineCheckInterval))
	} else {
		st, err := store.Open(ctx, cfg.StoreOptions(), logger)
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer st.Close()
		svc = accounts.NewLocalService(st, nil, logger)
	}

	app := cli.NewApp(svc, os.Stdin, os.Stdout, logger, opts...)
	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "cli stopped", "error", err)
	}
}
