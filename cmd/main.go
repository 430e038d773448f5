package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

const (
	flagCfg        = "cfg"
	flagNetwork    = "network"
	flagCommand    = "command"
	flagAddress    = "address"
	flagL1GasPrice = "l1-gas-price"
	flagL1JsonRpc  = "l1-json-rpc"
	flagTo         = "to"
	flagAmount     = "amount"
)

const (
	// App name
	appName = "airdrop-claim"
)

func main() {
	app := cli.NewApp()
	app.Name = appName
	app.Usage = "Merkle proofs and call data for the L2 airdrop claim"
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     flagCfg,
			Aliases:  []string{"c"},
			Usage:    "Configuration `FILE`",
			Required: false,
		},
		&cli.StringFlag{
			Name:     flagNetwork,
			Aliases:  []string{"n"},
			Usage:    "Network: mainnet, local. Required when the configuration has no [NetworkConfig] section",
			Required: false,
		},
	}
	claimFlags := append([]cli.Flag{
		&cli.StringFlag{
			Name:     flagCommand,
			Usage:    "generate-l2-contract-claim-tx, generate-l1-contract-claim-tx or generate-l2-transfer-tx",
			Value:    "generate-l2-contract-claim-tx",
			Required: false,
		},
		&cli.StringFlag{
			Name:  flagAddress,
			Usage: "Claiming `ADDRESS`, the L1 contract for generate-l1-contract-claim-tx",
		},
		&cli.StringFlag{
			Name:  flagL1GasPrice,
			Usage: "L1 gas price in gwei",
		},
		&cli.StringFlag{
			Name:  flagL1JsonRpc,
			Usage: "L1 JSON-RPC `URL`, defaults to the configured endpoint",
		},
		&cli.StringFlag{
			Name:  flagTo,
			Usage: "Recipient of generate-l2-transfer-tx",
		},
		&cli.StringFlag{
			Name:  flagAmount,
			Usage: "Amount in base units of generate-l2-transfer-tx",
		},
	}, flags...)
	app.Commands = []*cli.Command{
		{
			Name:    "version",
			Aliases: []string{},
			Usage:   "Application version and build",
			Action:  versionCmd,
		},
		{
			Name:    "run",
			Aliases: []string{},
			Usage:   "Run the claim service",
			Action:  start,
			Flags:   flags,
		},
		{
			Name:    "claim",
			Aliases: []string{},
			Usage:   "Print the claim descriptor of one address",
			Action:  claimCmd,
			Flags:   claimFlags,
		},
		{
			Name:    "roots",
			Aliases: []string{},
			Usage:   "Print the merkle root of every allocation",
			Action:  rootsCmd,
			Flags:   flags,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Printf("\nError: %v\n", err)
		os.Exit(1)
	}
}
