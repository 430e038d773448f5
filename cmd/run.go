package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/urfave/cli/v2"
	"github.com/zkairdrop/claim-service/allocation"
	"github.com/zkairdrop/claim-service/claimctrl"
	"github.com/zkairdrop/claim-service/config"
	"github.com/zkairdrop/claim-service/metrics"
	"github.com/zkairdrop/claim-service/ratelimit"
	"github.com/zkairdrop/claim-service/server"
)

func start(ctx *cli.Context) error {
	c, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	claimController, err := newClaimController(c)
	if err != nil {
		log.Error(err)
		return err
	}
	// Build the trees once so a broken allocation source fails at startup
	allocations, trees, err := claimController.Trees(backgroundCtx(ctx))
	if err != nil {
		log.Error(err)
		return err
	}
	logRoots(allocations, trees)

	limiter, err := ratelimit.New(backgroundCtx(ctx), c.RateLimit)
	if err != nil {
		log.Error(err)
		return err
	}

	go metrics.StartMetricsHttpServer(c.Metrics)

	router := server.NewRouter(server.NewClaimService(claimController), limiter, c.RateLimit)
	err = server.RunServer(c.Server, router)
	if err != nil {
		log.Error(err)
		return err
	}

	// Wait for an in interrupt.
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	<-ch

	return nil
}

func loadConfig(ctx *cli.Context) (*config.Config, error) {
	configFilePath := ctx.String(flagCfg)
	network := ctx.String(flagNetwork)
	c, err := config.Load(configFilePath, network)
	if err != nil {
		return nil, err
	}
	setupLog(c.Log)
	return c, nil
}

func setupLog(c log.Config) {
	log.Init(c)
}

func newClaimController(c *config.Config) (*claimctrl.ClaimController, error) {
	loader := allocation.NewLoader(c.Allocation)
	return claimctrl.NewClaimController(c.ClaimController, c.ClaimNetwork(), loader, claimctrl.DialBridgehub)
}

func backgroundCtx(ctx *cli.Context) context.Context {
	if ctx.Context != nil {
		return ctx.Context
	}
	return context.Background()
}
