package etherman

import (
	"context"
	"math/big"

	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/zkairdrop/claim-service/etherman/smartcontracts/bridgehub"
	"github.com/zkairdrop/claim-service/utils/gerror"
)

// Client reads the bridgehub deployed on L1
type Client struct {
	ethClient *ethclient.Client
	Bridgehub *bridgehub.Bridgehub
}

// NewClient dials the L1 node and binds the bridgehub at bridgehubAddr.
func NewClient(ctx context.Context, url string, bridgehubAddr common.Address) (*Client, error) {
	ethClient, err := ethclient.DialContext(ctx, url)
	if err != nil {
		log.Errorf("error connecting to %s: %+v", url, err)
		return nil, &gerror.UpstreamQueryError{Method: "dial", Err: err}
	}
	c, err := NewClientWithCaller(ethClient, bridgehubAddr)
	if err != nil {
		ethClient.Close()
		return nil, err
	}
	c.ethClient = ethClient
	return c, nil
}

// NewClientWithCaller binds the bridgehub to an already connected caller.
func NewClientWithCaller(caller bind.ContractCaller, bridgehubAddr common.Address) (*Client, error) {
	hub, err := bridgehub.NewBridgehub(bridgehubAddr, caller)
	if err != nil {
		return nil, &gerror.UpstreamQueryError{Method: bridgehub.MethodL2TransactionBaseCost, Err: err}
	}
	return &Client{Bridgehub: hub}, nil
}

// L2TransactionBaseCost returns the L1 value required to execute an L2 transaction with the given limits.
func (c *Client) L2TransactionBaseCost(ctx context.Context, chainID, gasPrice, l2GasLimit, gasPerPubdata *big.Int) (*big.Int, error) {
	cost, err := c.Bridgehub.L2TransactionBaseCost(&bind.CallOpts{Context: ctx}, chainID, gasPrice, l2GasLimit, gasPerPubdata)
	if err != nil {
		log.Warnf("%s on %s failed, chainID: %s, gasPrice: %s, err: %v",
			bridgehub.MethodL2TransactionBaseCost, c.Bridgehub.Address().Hex(), chainID, gasPrice, err)
		return nil, &gerror.UpstreamQueryError{Method: bridgehub.MethodL2TransactionBaseCost, Err: err}
	}
	log.Debugf("%s: chainID %s, gasPrice %s, cost %s", bridgehub.MethodL2TransactionBaseCost, chainID, gasPrice, cost)
	return cost, nil
}

// Close releases the underlying connection, if the client owns one.
func (c *Client) Close() {
	if c.ethClient != nil {
		c.ethClient.Close()
	}
}
