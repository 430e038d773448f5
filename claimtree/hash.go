package claimtree

import (
	"bytes"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/iden3/go-iden3-crypto/keccak256"
	"golang.org/x/crypto/sha3"
)

// KeyLen is the length of a node of the merkle tree
const KeyLen = 32

func hash(data ...[KeyLen]byte) [KeyLen]byte {
	var res [KeyLen]byte
	hash := sha3.NewLegacyKeccak256()
	for _, d := range data {
		hash.Write(d[:]) //nolint:errcheck,gosec
	}
	copy(res[:], hash.Sum(nil))
	return res
}

// hashPair hashes two siblings with the smaller one first, so a proof does not
// need to carry left/right positions.
func hashPair(a, b [KeyLen]byte) [KeyLen]byte {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	return hash(a, b)
}

// HashLeaf computes keccak256(abi.encodePacked(uint256 index, address account, uint256 amount)).
func HashLeaf(index uint64, account common.Address, amount *big.Int) [KeyLen]byte {
	var (
		res      [KeyLen]byte
		indexBuf [KeyLen]byte
		amtBuf   [KeyLen]byte
	)
	new(big.Int).SetUint64(index).FillBytes(indexBuf[:])
	amount.FillBytes(amtBuf[:])
	copy(res[:], keccak256.Hash(indexBuf[:], account[:], amtBuf[:]))
	return res
}
