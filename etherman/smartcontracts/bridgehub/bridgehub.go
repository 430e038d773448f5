package bridgehub

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

const (
	// MethodL2TransactionBaseCost is the view returning the L1 value needed to execute an L2 transaction
	MethodL2TransactionBaseCost = "l2TransactionBaseCost"
	// MethodRequestL2TransactionDirect is the entry point requesting an L2 transaction from L1
	MethodRequestL2TransactionDirect = "requestL2TransactionDirect"
)

// L2TransactionRequestDirect mirrors the struct L2TransactionRequestDirect of the bridgehub.
// Field order and types must match the contract tuple.
type L2TransactionRequestDirect struct {
	ChainId                  *big.Int
	MintValue                *big.Int
	L2Contract               common.Address
	L2Value                  *big.Int
	L2Calldata               []byte
	L2GasLimit               *big.Int
	L2GasPerPubdataByteLimit *big.Int
	FactoryDeps              [][]byte
	RefundRecipient          common.Address
}

// BridgehubMetaData contains the subset of the bridgehub ABI used by the claim service.
var BridgehubMetaData = &bind.MetaData{
	ABI: "[{\"inputs\":[{\"internalType\":\"uint256\",\"name\":\"_chainId\",\"type\":\"uint256\"},{\"internalType\":\"uint256\",\"name\":\"_gasPrice\",\"type\":\"uint256\"},{\"internalType\":\"uint256\",\"name\":\"_l2GasLimit\",\"type\":\"uint256\"},{\"internalType\":\"uint256\",\"name\":\"_l2GasPerPubdataByteLimit\",\"type\":\"uint256\"}],\"name\":\"l2TransactionBaseCost\",\"outputs\":[{\"internalType\":\"uint256\",\"name\":\"\",\"type\":\"uint256\"}],\"stateMutability\":\"view\",\"type\":\"function\"},{\"inputs\":[{\"components\":[{\"internalType\":\"uint256\",\"name\":\"chainId\",\"type\":\"uint256\"},{\"internalType\":\"uint256\",\"name\":\"mintValue\",\"type\":\"uint256\"},{\"internalType\":\"address\",\"name\":\"l2Contract\",\"type\":\"address\"},{\"internalType\":\"uint256\",\"name\":\"l2Value\",\"type\":\"uint256\"},{\"internalType\":\"bytes\",\"name\":\"l2Calldata\",\"type\":\"bytes\"},{\"internalType\":\"uint256\",\"name\":\"l2GasLimit\",\"type\":\"uint256\"},{\"internalType\":\"uint256\",\"name\":\"l2GasPerPubdataByteLimit\",\"type\":\"uint256\"},{\"internalType\":\"bytes[]\",\"name\":\"factoryDeps\",\"type\":\"bytes[]\"},{\"internalType\":\"address\",\"name\":\"refundRecipient\",\"type\":\"address\"}],\"internalType\":\"struct L2TransactionRequestDirect\",\"name\":\"_request\",\"type\":\"tuple\"}],\"name\":\"requestL2TransactionDirect\",\"outputs\":[{\"internalType\":\"bytes32\",\"name\":\"canonicalTxHash\",\"type\":\"bytes32\"}],\"stateMutability\":\"payable\",\"type\":\"function\"}]",
}

// Bridgehub is a read only binding of the bridgehub contract.
type Bridgehub struct {
	address  common.Address
	abi      *abi.ABI
	contract *bind.BoundContract
}

// NewBridgehub creates a bridgehub binding bound to the given caller.
func NewBridgehub(address common.Address, caller bind.ContractCaller) (*Bridgehub, error) {
	parsed, err := BridgehubMetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	return &Bridgehub{
		address:  address,
		abi:      parsed,
		contract: bind.NewBoundContract(address, *parsed, caller, nil, nil),
	}, nil
}

// Address returns the bridgehub address.
func (b *Bridgehub) Address() common.Address {
	return b.address
}

// L2TransactionBaseCost calls l2TransactionBaseCost(uint256,uint256,uint256,uint256).
func (b *Bridgehub) L2TransactionBaseCost(opts *bind.CallOpts, chainId, gasPrice, l2GasLimit, l2GasPerPubdataByteLimit *big.Int) (*big.Int, error) {
	var out []interface{}
	err := b.contract.Call(opts, &out, MethodL2TransactionBaseCost, chainId, gasPrice, l2GasLimit, l2GasPerPubdataByteLimit)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// PackRequestL2TransactionDirect encodes the call data of requestL2TransactionDirect.
func PackRequestL2TransactionDirect(request L2TransactionRequestDirect) ([]byte, error) {
	parsed, err := BridgehubMetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	if request.FactoryDeps == nil {
		request.FactoryDeps = [][]byte{}
	}
	return parsed.Pack(MethodRequestL2TransactionDirect, request)
}
