package claimctrl

import (
	"context"
	"errors"
	"time"

	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/zkairdrop/claim-service/allocation"
	"github.com/zkairdrop/claim-service/claimtree"
	"github.com/zkairdrop/claim-service/etherman"
	"github.com/zkairdrop/claim-service/localcache"
	"github.com/zkairdrop/claim-service/metrics"
	"github.com/zkairdrop/claim-service/utils/gerror"
	"golang.org/x/sync/errgroup"
)

const (
	flowL1 = "l1"
	flowL2 = "l2"
)

// ClaimController resolves eligibility against the allocation trees and builds claim transactions.
type ClaimController struct {
	cfg     Config
	network Network
	loader  allocationLoader
	trees   localcache.TreeCache
	dial    BridgehubDialer
}

// NewClaimController creates new ClaimController.
func NewClaimController(cfg Config, network Network, loader allocationLoader, dial BridgehubDialer) (*ClaimController, error) {
	if len(network.DistributorAddrs) == 0 {
		return nil, &gerror.ConfigurationError{Msg: "no merkle distributor configured"}
	}
	trees, err := localcache.NewTreeCache(cfg.TreeCacheSize)
	if err != nil {
		return nil, err
	}
	return &ClaimController{
		cfg:     cfg,
		network: network,
		loader:  loader,
		trees:   trees,
		dial:    dial,
	}, nil
}

// DialBridgehub is the BridgehubDialer backed by an ethclient connection.
func DialBridgehub(ctx context.Context, url string, addr common.Address) (BridgehubClient, error) {
	client, err := etherman.NewClient(ctx, url, addr)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// Trees loads every allocation and returns the merkle tree of each one, in distributor order.
func (cc *ClaimController) Trees(ctx context.Context) ([]*allocation.Allocation, []*claimtree.MerkleTree, error) {
	allocations, err := cc.loader.Load(ctx, cc.network.DistributorAddrs)
	if err != nil {
		return nil, nil, err
	}
	trees := make([]*claimtree.MerkleTree, len(allocations))
	for i, a := range allocations {
		trees[i] = cc.tree(a)
	}
	return allocations, trees, nil
}

func (cc *ClaimController) tree(a *allocation.Allocation) *claimtree.MerkleTree {
	return cc.trees.GetOrBuild(a.Digest, func() *claimtree.MerkleTree {
		start := time.Now()
		tree := claimtree.BuildFromAllocation(a)
		metrics.RecordTreeBuild(tree.Len(), time.Since(start))
		if root, ok := tree.Root(); ok {
			log.Infof("merkle tree of distributor %s built, leaves: %d, root: %s", a.DistributorAddress.Hex(), tree.Len(), root.Hex())
		} else {
			log.Warnf("allocation of distributor %s has no valid rows", a.DistributorAddress.Hex())
		}
		return tree
	})
}

// ResolveOne looks up address in a single tree and returns the distributor claim call.
// It returns gerror.ErrLeafNotFound when the tree does not hold the address.
func ResolveOne(tree *claimtree.MerkleTree, distributor common.Address, address string) (*Call, error) {
	if tree.Len() == 0 {
		return nil, gerror.ErrEmptyTree
	}
	leaf, found := tree.FindLeaf(address)
	if !found {
		return nil, gerror.ErrLeafNotFound
	}
	proof, err := tree.GetProof(leaf.Hash)
	if err != nil {
		return nil, err
	}
	hashes := claimtree.ProofToHashes(proof)
	data, err := etherman.EncodeClaim(leaf.Index, leaf.Amount, hashes)
	if err != nil {
		return nil, err
	}
	hexProof := make([]string, len(hashes))
	for i, h := range hashes {
		hexProof[i] = h.Hex()
	}
	return &Call{
		To:       distributor.Hex(),
		Function: etherman.MethodClaim,
		Params: ClaimParams{
			Index:       leaf.Index,
			Amount:      leaf.Amount.String(),
			MerkleProof: hexProof,
		},
		L2RawCalldata: hexutil.Encode(data),
		contract:      distributor,
		calldata:      data,
	}, nil
}

// ResolveL2 resolves address against every allocation. It fails only when no allocation holds it.
// For L1 claims address is the aliased form and the error reports the original L1 address.
func (cc *ClaimController) ResolveL2(ctx context.Context, address string, isL1 bool) (*ClaimDescriptor, error) {
	flow := flowL2
	if isL1 {
		flow = flowL1
	}
	allocations, err := cc.loader.Load(ctx, cc.network.DistributorAddrs)
	if err != nil {
		metrics.RecordClaimResolution(flow, metrics.ResultError, 0)
		return nil, err
	}

	calls := make([]*Call, len(allocations))
	var g errgroup.Group
	for i, a := range allocations {
		i, a := i, a
		g.Go(func() error {
			call, err := ResolveOne(cc.tree(a), a.DistributorAddress, address)
			if errors.Is(err, gerror.ErrLeafNotFound) || errors.Is(err, gerror.ErrEmptyTree) {
				return nil
			}
			if err != nil {
				return err
			}
			calls[i] = call
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		metrics.RecordClaimResolution(flow, metrics.ResultError, 0)
		return nil, err
	}

	matched := make([]*Call, 0, len(calls))
	for _, call := range calls {
		if call != nil {
			matched = append(matched, call)
		}
	}
	if len(matched) == 0 {
		metrics.RecordClaimResolution(flow, metrics.ResultIneligible, 0)
		return nil, &gerror.IneligibleAddressError{Address: displayAddress(address, isL1)}
	}
	metrics.RecordClaimResolution(flow, metrics.ResultEligible, len(matched))
	log.Debugf("address %s matched %d of %d allocations", address, len(matched), len(allocations))

	desc := &ClaimDescriptor{Address: address}
	if len(allocations) == 1 {
		desc.CallToClaim = matched[0]
	} else {
		desc.CallsToClaim = matched
	}
	return desc, nil
}

func displayAddress(address string, isL1 bool) string {
	if !isL1 || !common.IsHexAddress(address) {
		return address
	}
	return allocation.UndoL1ToL2Alias(common.HexToAddress(address)).Hex()
}
