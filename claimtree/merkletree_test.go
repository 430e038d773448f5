package claimtree

import (
	"bytes"
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zkairdrop/claim-service/allocation"
	"github.com/zkairdrop/claim-service/utils/gerror"
)

func testRows(n int) [][]string {
	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		addr := common.BigToAddress(big.NewInt(int64(1000 + i)))
		rows[i] = []string{strings.ToLower(addr.Hex()), fmt.Sprintf("%d", (i+1)*100)}
	}
	return rows
}

func buildTree(rows, l1 [][]string) *MerkleTree {
	return NewMerkleTree(allocation.BuildEntries(rows, l1))
}

func TestHashLeafMatchesPackedEncoding(t *testing.T) {
	account := common.HexToAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	amount, ok := new(big.Int).SetString("1000000000000000000", 10)
	require.True(t, ok)

	packed := append(common.LeftPadBytes(big.NewInt(7).Bytes(), 32), account.Bytes()...)
	packed = append(packed, common.LeftPadBytes(amount.Bytes(), 32)...)
	require.Len(t, packed, 84)

	leaf := HashLeaf(7, account, amount)
	assert.Equal(t, crypto.Keccak256Hash(packed), common.Hash(leaf))
}

func TestTwoLeafRoot(t *testing.T) {
	rows := [][]string{
		{"0x00000000000000000000000000000000000000a1", "100"},
		{"0x00000000000000000000000000000000000000b2", "200"},
	}
	mt := buildTree(rows, nil)
	require.Equal(t, 2, mt.Len())

	h0 := HashLeaf(0, common.HexToAddress(rows[0][0]), big.NewInt(100))
	h1 := HashLeaf(1, common.HexToAddress(rows[1][0]), big.NewInt(200))
	first, second := h0, h1
	if bytes.Compare(h1[:], h0[:]) < 0 {
		first, second = h1, h0
	}
	expected := crypto.Keccak256Hash(first[:], second[:])

	root, ok := mt.Root()
	require.True(t, ok)
	assert.Equal(t, expected, root)

	leaves := mt.Leaves()
	assert.Equal(t, first, leaves[0].Hash)
	assert.Equal(t, second, leaves[1].Hash)
}

func TestRootIsDeterministic(t *testing.T) {
	rows := testRows(25)
	root1, ok := buildTree(rows, nil).Root()
	require.True(t, ok)
	root2, ok := buildTree(rows, nil).Root()
	require.True(t, ok)
	assert.Equal(t, root1, root2)
}

func TestRootIgnoresLeafOrder(t *testing.T) {
	rows := testRows(17)
	entries := allocation.BuildEntries(rows, nil)
	root, ok := NewMerkleTree(entries).Root()
	require.True(t, ok)

	r := rand.New(rand.NewSource(42)) //nolint:gosec
	for i := 0; i < 5; i++ {
		shuffled := make([]allocation.Entry, len(entries))
		copy(shuffled, entries)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		got, ok := NewMerkleTree(shuffled).Root()
		require.True(t, ok)
		assert.Equal(t, root, got)
	}
}

func TestProofsVerify(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 8, 33} {
		t.Run(fmt.Sprintf("%d leaves", n), func(t *testing.T) {
			mt := buildTree(testRows(n), nil)
			root, ok := mt.Root()
			require.True(t, ok)
			for _, leaf := range mt.Leaves() {
				proof, err := mt.GetProof(leaf.Hash)
				require.NoError(t, err)
				assert.True(t, VerifyProof(leaf.Hash, proof, root))
			}

			foreign := HashLeaf(9999, common.HexToAddress("0x01"), big.NewInt(1))
			_, err := mt.GetProof(foreign)
			require.ErrorIs(t, err, gerror.ErrLeafNotFound)
			leafProof, err := mt.GetProof(mt.Leaves()[0].Hash)
			require.NoError(t, err)
			assert.False(t, VerifyProof(foreign, leafProof, root))
		})
	}
}

func TestEmptyTree(t *testing.T) {
	mt := buildTree([][]string{{"garbage", "1"}}, nil)
	_, ok := mt.Root()
	assert.False(t, ok)
	assert.Equal(t, 0, mt.Len())
	_, err := mt.GetProof([KeyLen]byte{})
	require.ErrorIs(t, err, gerror.ErrEmptyTree)
	_, found := mt.FindLeaf("0x00000000000000000000000000000000000000a1")
	assert.False(t, found)
}

func TestFindLeafIgnoresCase(t *testing.T) {
	rows := [][]string{{"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", "5"}}
	mt := buildTree(rows, nil)
	for _, query := range []string{
		"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0x5AAEB6053F3E94C9B9A09F33669435E7EF1BEAED",
	} {
		leaf, found := mt.FindLeaf(query)
		require.True(t, found, query)
		assert.Equal(t, uint64(0), leaf.Index)
	}
}

func TestAliasChangesLeafHash(t *testing.T) {
	rows := [][]string{{"0x00000000000000000000000000000000000000a1", "100"}}
	plain := buildTree(rows, nil).Leaves()[0]
	aliased := buildTree(rows, [][]string{{"0x00000000000000000000000000000000000000A1"}}).Leaves()[0]

	assert.NotEqual(t, plain.Hash, aliased.Hash)
	expected := allocation.ApplyL1ToL2Alias(common.HexToAddress(rows[0][0]))
	assert.Equal(t, expected.Hex(), aliased.Address)
	assert.Equal(t, HashLeaf(0, expected, big.NewInt(100)), aliased.Hash)
}
