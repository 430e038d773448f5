package claimtree

import (
	"bytes"
	"math/big"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/zkairdrop/claim-service/allocation"
	"github.com/zkairdrop/claim-service/utils/gerror"
)

// Leaf is one hashed allocation entry.
type Leaf struct {
	Index   uint64
	Address string
	Amount  *big.Int
	Hash    [KeyLen]byte
}

// MerkleTree is an immutable tree over leaves sorted by hash, combined with sorted pair hashing.
type MerkleTree struct {
	// leaves are sorted ascending by hash
	leaves []Leaf
	// levels[0] holds the leaf hashes, the last level holds the root
	levels [][][KeyLen]byte
	// positions maps a leaf hash to its position in levels[0]
	positions map[[KeyLen]byte]int
}

// NewMerkleTree hashes the entries and builds the tree. Entries with an empty
// list produce a tree without root.
func NewMerkleTree(entries []allocation.Entry) *MerkleTree {
	leaves := make([]Leaf, len(entries))
	for i, e := range entries {
		leaves[i] = Leaf{
			Index:   e.Index,
			Address: e.Address,
			Amount:  e.Amount,
			Hash:    HashLeaf(e.Index, common.HexToAddress(e.Address), e.Amount),
		}
	}
	sort.Slice(leaves, func(i, j int) bool {
		return bytes.Compare(leaves[i].Hash[:], leaves[j].Hash[:]) < 0
	})

	mt := &MerkleTree{
		leaves:    leaves,
		positions: make(map[[KeyLen]byte]int, len(leaves)),
	}
	if len(leaves) == 0 {
		return mt
	}

	level := make([][KeyLen]byte, len(leaves))
	for i, l := range leaves {
		level[i] = l.Hash
		mt.positions[l.Hash] = i
	}
	mt.levels = append(mt.levels, level)
	for len(level) > 1 {
		next := make([][KeyLen]byte, 0, (len(level)+1)/2) //nolint:gomnd
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				// odd node is promoted to the next level unchanged
				next = append(next, level[i])
				continue
			}
			next = append(next, hashPair(level[i], level[i+1]))
		}
		mt.levels = append(mt.levels, next)
		level = next
	}
	return mt
}

// BuildFromAllocation runs the filter, alias and index stages and builds the tree.
func BuildFromAllocation(a *allocation.Allocation) *MerkleTree {
	return NewMerkleTree(allocation.BuildEntries(a.AllEligible, a.L1Eligible))
}

// Root returns the merkle root. The boolean is false when the tree has no leaves.
func (mt *MerkleTree) Root() (common.Hash, bool) {
	if len(mt.levels) == 0 {
		return common.Hash{}, false
	}
	return common.Hash(mt.levels[len(mt.levels)-1][0]), true
}

// Len returns the number of leaves.
func (mt *MerkleTree) Len() int {
	return len(mt.leaves)
}

// Leaves returns a copy of the leaves, sorted by hash.
func (mt *MerkleTree) Leaves() []Leaf {
	leaves := make([]Leaf, len(mt.leaves))
	copy(leaves, mt.leaves)
	return leaves
}

// FindLeaf returns the first leaf, in hash order, whose address matches ignoring case.
func (mt *MerkleTree) FindLeaf(address string) (Leaf, bool) {
	address = strings.TrimSpace(address)
	for _, l := range mt.leaves {
		if strings.EqualFold(l.Address, address) {
			return l, true
		}
	}
	return Leaf{}, false
}

// GetProof returns the sibling path from the leaf up to the root.
func (mt *MerkleTree) GetProof(leaf [KeyLen]byte) ([][KeyLen]byte, error) {
	if len(mt.levels) == 0 {
		return nil, gerror.ErrEmptyTree
	}
	index, found := mt.positions[leaf]
	if !found {
		return nil, gerror.ErrLeafNotFound
	}
	proof := make([][KeyLen]byte, 0, len(mt.levels)-1)
	for h := 0; h < len(mt.levels)-1; h++ {
		sibling := index ^ 1
		if sibling < len(mt.levels[h]) {
			proof = append(proof, mt.levels[h][sibling])
		}
		index /= 2
	}
	return proof, nil
}

// VerifyProof checks that leaf belongs to the tree with the given root.
func VerifyProof(leaf [KeyLen]byte, proof [][KeyLen]byte, root [KeyLen]byte) bool {
	cur := leaf
	for _, p := range proof {
		cur = hashPair(cur, p)
	}
	return cur == root
}

// ProofToHashes converts a proof to the bytes32[] form used in call data.
func ProofToHashes(proof [][KeyLen]byte) []common.Hash {
	hashes := make([]common.Hash, len(proof))
	for i, p := range proof {
		hashes[i] = common.Hash(p)
	}
	return hashes
}
