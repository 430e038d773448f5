package allocation

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// l1ToL2AliasOffset is added to an L1 contract address to obtain the address it controls on L2
	l1ToL2AliasOffset = new(big.Int).SetBytes(common.FromHex("0x1111000000000000000000000000000000001111"))
	addressModulo     = new(big.Int).Lsh(big.NewInt(1), common.AddressLength*8) //nolint:gomnd
)

// ApplyL1ToL2Alias converts an L1 address into its L2 alias.
func ApplyL1ToL2Alias(addr common.Address) common.Address {
	v := new(big.Int).SetBytes(addr.Bytes())
	v.Add(v, l1ToL2AliasOffset)
	v.Mod(v, addressModulo)
	return common.BigToAddress(v)
}

// UndoL1ToL2Alias converts an L2 alias back into the L1 address it was derived from.
func UndoL1ToL2Alias(addr common.Address) common.Address {
	v := new(big.Int).SetBytes(addr.Bytes())
	v.Sub(v, l1ToL2AliasOffset)
	v.Mod(v, addressModulo)
	return common.BigToAddress(v)
}

// IsValidAddress reports whether s is a 0x prefixed, 20 byte hex address.
// Mixed case addresses must carry a correct EIP-55 checksum.
func IsValidAddress(s string) bool {
	if !strings.HasPrefix(s, "0x") || len(s) != 2+2*common.AddressLength {
		return false
	}
	if !common.IsHexAddress(s) {
		return false
	}
	if strings.ToLower(s) == s {
		return true
	}
	return common.HexToAddress(s).Hex() == s
}

// SameAddress compares two address strings ignoring letter case.
func SameAddress(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
