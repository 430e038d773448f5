package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/urfave/cli/v2"
	"github.com/zkairdrop/claim-service/allocation"
	"github.com/zkairdrop/claim-service/claimtree"
)

func rootsCmd(ctx *cli.Context) error {
	c, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	claimController, err := newClaimController(c)
	if err != nil {
		return err
	}
	allocations, trees, err := claimController.Trees(backgroundCtx(ctx))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0) //nolint:gomnd
	fmt.Fprintln(w, "DISTRIBUTOR\tLEAVES\tROOT")
	for i, a := range allocations {
		root := "-"
		if r, ok := trees[i].Root(); ok {
			root = r.Hex()
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", a.DistributorAddress.Hex(), trees[i].Len(), root)
	}
	return w.Flush()
}

func logRoots(allocations []*allocation.Allocation, trees []*claimtree.MerkleTree) {
	for i, a := range allocations {
		root, ok := trees[i].Root()
		if !ok {
			log.Warnf("distributor %s: allocation has no valid rows", a.DistributorAddress.Hex())
			continue
		}
		log.Infof("distributor %s: %d leaves, root %s", a.DistributorAddress.Hex(), trees[i].Len(), root.Hex())
	}
}
