package main

import (
	"encoding/json"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/zkairdrop/claim-service/server"
)

func claimCmd(ctx *cli.Context) error {
	c, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	claimController, err := newClaimController(c)
	if err != nil {
		return err
	}

	req := &server.MerkleRequest{
		Command:    ctx.String(flagCommand),
		Address:    ctx.String(flagAddress),
		L1GasPrice: ctx.String(flagL1GasPrice),
		L1JsonRpc:  ctx.String(flagL1JsonRpc),
		To:         ctx.String(flagTo),
		Amount:     ctx.String(flagAmount),
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	resp, err := server.NewClaimService(claimController).Handle(backgroundCtx(ctx), req)
	if err != nil {
		_ = encoder.Encode(server.ErrorResponse{Error: err.Error()})
		return err
	}
	return encoder.Encode(resp)
}
