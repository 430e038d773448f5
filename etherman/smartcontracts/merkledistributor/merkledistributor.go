package merkledistributor

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

// MethodClaim is the distributor entry point verifying a proof and releasing the tokens
const MethodClaim = "claim"

// MerkledistributorMetaData contains the subset of the merkle distributor ABI used by the claim service.
var MerkledistributorMetaData = &bind.MetaData{
	ABI: "[{\"inputs\":[{\"internalType\":\"uint256\",\"name\":\"_index\",\"type\":\"uint256\"},{\"internalType\":\"uint256\",\"name\":\"_amount\",\"type\":\"uint256\"},{\"internalType\":\"bytes32[]\",\"name\":\"_merkleProof\",\"type\":\"bytes32[]\"}],\"name\":\"claim\",\"outputs\":[],\"stateMutability\":\"nonpayable\",\"type\":\"function\"}]",
}

// PackClaim encodes claim(uint256,uint256,bytes32[]).
func PackClaim(index, amount *big.Int, merkleProof [][32]byte) ([]byte, error) {
	parsed, err := MerkledistributorMetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	if merkleProof == nil {
		merkleProof = [][32]byte{}
	}
	return parsed.Pack(MethodClaim, index, amount, merkleProof)
}
