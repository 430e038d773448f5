package main

import (
	"os"

	"github.com/urfave/cli/v2"
	claimservice "github.com/zkairdrop/claim-service"
)

func versionCmd(*cli.Context) error {
	claimservice.PrintVersion(os.Stdout)
	return nil
}
