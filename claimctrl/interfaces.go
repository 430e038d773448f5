package claimctrl

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/zkairdrop/claim-service/allocation"
)

// allocationLoader reads the allocation tables of every distributor
type allocationLoader interface {
	Load(ctx context.Context, distributors []common.Address) ([]*allocation.Allocation, error)
}

// BridgehubClient reads the L1 bridgehub
type BridgehubClient interface {
	L2TransactionBaseCost(ctx context.Context, chainID, gasPrice, l2GasLimit, gasPerPubdata *big.Int) (*big.Int, error)
	Close()
}

// BridgehubDialer connects to the L1 node at url and binds the bridgehub at addr
type BridgehubDialer func(ctx context.Context, url string, addr common.Address) (BridgehubClient, error)
