package claimctrl

import (
	"context"
	"errors"
	"math/big"
	"strings"

	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/zkairdrop/claim-service/allocation"
	"github.com/zkairdrop/claim-service/etherman"
	"github.com/zkairdrop/claim-service/metrics"
	"github.com/zkairdrop/claim-service/utils/gerror"
)

const gweiDecimals = 9

// ParseGwei converts a decimal gwei amount, e.g. "12.5", into wei.
func ParseGwei(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	invalid := &gerror.ValidationError{Msg: "Invalid parameter: l1GasPrice must be a decimal amount of gwei"}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if intPart == "" || !isDigits(intPart) || (hasFrac && (fracPart == "" || !isDigits(fracPart) || len(fracPart) > gweiDecimals)) {
		return nil, invalid
	}
	wei, ok := new(big.Int).SetString(intPart+fracPart+strings.Repeat("0", gweiDecimals-len(fracPart)), 10) //nolint:gomnd
	if !ok {
		return nil, invalid
	}
	return wei, nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ClaimL2 builds the calls claiming the allocations of address directly on L2.
func (cc *ClaimController) ClaimL2(ctx context.Context, address string) (*ClaimDescriptor, error) {
	return cc.ResolveL2(ctx, address, false)
}

// ClaimL1 builds the L1 transactions that claim, through the bridgehub, the allocations of the
// L1 contract at address. gasPriceGwei is the L1 gas price in gwei and rpcURL an optional L1 node.
func (cc *ClaimController) ClaimL1(ctx context.Context, address, gasPriceGwei, rpcURL string) (*ClaimDescriptor, error) {
	if strings.TrimSpace(gasPriceGwei) == "" {
		return nil, gerror.NewMissingParamError("l1GasPrice")
	}
	gasPrice, err := ParseGwei(gasPriceGwei)
	if err != nil {
		return nil, err
	}
	address = strings.TrimSpace(address)
	if !common.IsHexAddress(address) {
		return nil, &gerror.ValidationError{Msg: "Invalid parameter: address " + address}
	}

	l1Address := common.HexToAddress(address)
	aliased := allocation.ApplyL1ToL2Alias(l1Address).Hex()
	l2Desc, err := cc.ResolveL2(ctx, aliased, true)
	if err != nil {
		return nil, err
	}

	if rpcURL == "" {
		rpcURL = cc.network.DefaultL1RPC
	}
	if rpcURL == "" {
		return nil, &gerror.ConfigurationError{Msg: "no L1 JSON-RPC endpoint configured"}
	}
	hub, err := cc.dial(ctx, rpcURL, cc.network.BridgehubAddr)
	if err != nil {
		metrics.RecordUpstreamQuery(false)
		return nil, err
	}
	defer hub.Close()

	l2Calls := l2Desc.Calls()
	l1Calls := make([]*Call, 0, len(l2Calls))
	for _, l2Call := range l2Calls {
		l1Call, err := cc.BuildL1Tx(ctx, hub, l2Call, l1Address, gasPrice)
		if err != nil {
			return nil, err
		}
		l1Calls = append(l1Calls, l1Call)
	}

	desc := &ClaimDescriptor{Address: address}
	if l2Desc.CallToClaim != nil {
		desc.CallToClaim = l1Calls[0]
	} else {
		desc.CallsToClaim = l1Calls
	}
	return desc, nil
}

// BuildL1Tx wraps an L2 call into a bridgehub requestL2TransactionDirect call. The required
// value is read from the bridgehub for the given L1 gas price in wei.
func (cc *ClaimController) BuildL1Tx(ctx context.Context, hub BridgehubClient, l2Call *Call, refundRecipient common.Address, gasPrice *big.Int) (*Call, error) {
	var (
		chainID       = new(big.Int).SetUint64(cc.network.L2ChainID)
		l2GasLimit    = new(big.Int).SetUint64(cc.cfg.L2TxGasLimit)
		gasPerPubdata = new(big.Int).SetUint64(cc.cfg.L2GasPerPubdataByteLimit)
	)
	cost, err := hub.L2TransactionBaseCost(ctx, chainID, gasPrice, l2GasLimit, gasPerPubdata)
	metrics.RecordUpstreamQuery(err == nil)
	if err != nil {
		var upstreamErr *gerror.UpstreamQueryError
		if !errors.As(err, &upstreamErr) {
			err = &gerror.UpstreamQueryError{Method: "l2TransactionBaseCost", Err: err}
		}
		return nil, err
	}

	request := etherman.L2TransactionRequestDirect{
		ChainId:                  chainID,
		MintValue:                cost,
		L2Contract:               l2Call.contract,
		L2Value:                  big.NewInt(0),
		L2Calldata:               l2Call.calldata,
		L2GasLimit:               l2GasLimit,
		L2GasPerPubdataByteLimit: gasPerPubdata,
		FactoryDeps:              [][]byte{},
		RefundRecipient:          refundRecipient,
	}
	data, err := etherman.EncodeRequestL2TransactionDirect(request)
	if err != nil {
		return nil, err
	}
	log.Debugf("L1 claim tx for %s built, mintValue: %s, gasPrice: %s", l2Call.To, cost, gasPrice)

	return &Call{
		To:       cc.network.BridgehubAddr.Hex(),
		Function: etherman.MethodRequestL2TransactionDirect,
		Params: L1TxParams{
			ChainID:                  cc.network.L2ChainID,
			MintValue:                cost.String(),
			L2Contract:               l2Call.contract.Hex(),
			L2Value:                  0,
			L2Calldata:               hexutil.Encode(l2Call.calldata),
			L2GasLimit:               cc.cfg.L2TxGasLimit,
			L2GasPerPubdataByteLimit: cc.cfg.L2GasPerPubdataByteLimit,
			FactoryDeps:              []string{},
			RefundRecipient:          refundRecipient.Hex(),
		},
		L1RawCalldata: hexutil.Encode(data),
		Value:         cost.String(),
		GasPrice:      gasPrice.String(),
		contract:      cc.network.BridgehubAddr,
		calldata:      data,
	}, nil
}

// TransferData builds an L2 token transfer of amount base units to the address to.
func (cc *ClaimController) TransferData(to, amount string) (*TransferDescriptor, error) {
	if strings.TrimSpace(to) == "" {
		return nil, gerror.NewMissingParamError("to")
	}
	if strings.TrimSpace(amount) == "" {
		return nil, gerror.NewMissingParamError("amount")
	}
	if !allocation.IsValidAddress(strings.TrimSpace(to)) {
		return nil, &gerror.ValidationError{Msg: "Invalid parameter: to " + to}
	}
	value, ok := allocation.ParseAmount(amount)
	if !ok {
		return nil, &gerror.ValidationError{Msg: "Invalid parameter: amount " + amount}
	}
	recipient := common.HexToAddress(to)
	data, err := etherman.EncodeTransfer(recipient, value)
	if err != nil {
		return nil, err
	}
	return &TransferDescriptor{
		CallToTransfer: &Call{
			To:            cc.network.L2TokenAddr.Hex(),
			Function:      etherman.MethodTransfer,
			Params:        TransferParams{To: recipient.Hex(), Amount: value.String()},
			L2RawCalldata: hexutil.Encode(data),
			contract:      cc.network.L2TokenAddr,
			calldata:      data,
		},
	}, nil
}
