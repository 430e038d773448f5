package etherman

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/zkairdrop/claim-service/etherman/smartcontracts/bridgehub"
	"github.com/zkairdrop/claim-service/etherman/smartcontracts/erc20"
	"github.com/zkairdrop/claim-service/etherman/smartcontracts/merkledistributor"
)

const (
	// MethodClaim is the function called on the merkle distributor
	MethodClaim = merkledistributor.MethodClaim
	// MethodRequestL2TransactionDirect is the function called on the bridgehub
	MethodRequestL2TransactionDirect = bridgehub.MethodRequestL2TransactionDirect
	// MethodTransfer is the function called on the L2 token
	MethodTransfer = erc20.MethodTransfer
)

// EncodeClaim returns the call data of claim(index, amount, merkleProof).
func EncodeClaim(index uint64, amount *big.Int, proof []common.Hash) ([]byte, error) {
	p := make([][32]byte, len(proof))
	for i, h := range proof {
		p[i] = h
	}
	return merkledistributor.PackClaim(new(big.Int).SetUint64(index), amount, p)
}

// EncodeRequestL2TransactionDirect returns the call data of requestL2TransactionDirect(request).
func EncodeRequestL2TransactionDirect(request L2TransactionRequestDirect) ([]byte, error) {
	return bridgehub.PackRequestL2TransactionDirect(request)
}

// EncodeTransfer returns the call data of transfer(to, amount).
func EncodeTransfer(to common.Address, amount *big.Int) ([]byte, error) {
	return erc20.PackTransfer(to, amount)
}
