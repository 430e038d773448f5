package allocation

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const maxAmountBits = 256

// Row is one valid CSV row. Amount is the parsed token amount in base units.
type Row struct {
	Address string
	Amount  *big.Int
}

// Entry is a row with its final address form and its position in the compacted list.
type Entry struct {
	Index   uint64
	Address string
	Amount  *big.Int
}

// BuildEntries turns raw allocation rows into indexed entries.
// The order of the stages is fixed: invalid rows are dropped first, then L1
// contracts are rewritten to their alias and only then indices are assigned, so
// an index is the position in the filtered list and never the CSV line number.
func BuildEntries(allEligible, l1Eligible [][]string) []Entry {
	valid := FilterRows(allEligible)
	aliased := AliasRows(valid, l1Eligible)
	return IndexRows(aliased)
}

// FilterRows keeps the rows holding a valid address and a uint256 decimal amount.
func FilterRows(records [][]string) []Row {
	rows := make([]Row, 0, len(records))
	for _, record := range records {
		if len(record) < 2 { //nolint:gomnd
			continue
		}
		addr := strings.TrimSpace(record[0])
		if !IsValidAddress(addr) {
			continue
		}
		amount, ok := ParseAmount(record[1])
		if !ok {
			continue
		}
		rows = append(rows, Row{Address: addr, Amount: amount})
	}
	return rows
}

// AliasRows replaces the addresses present in the L1 eligibility list with their L2 alias.
// The input is not modified.
func AliasRows(rows []Row, l1Eligible [][]string) []Row {
	l1Contracts := make(map[string]struct{}, len(l1Eligible))
	for _, record := range l1Eligible {
		if len(record) == 0 {
			continue
		}
		l1Contracts[strings.ToLower(strings.TrimSpace(record[0]))] = struct{}{}
	}

	out := make([]Row, len(rows))
	for i, row := range rows {
		out[i] = row
		if _, found := l1Contracts[strings.ToLower(row.Address)]; found {
			out[i].Address = ApplyL1ToL2Alias(common.HexToAddress(row.Address)).Hex()
		}
	}
	return out
}

// IndexRows assigns consecutive indices to already filtered rows.
func IndexRows(rows []Row) []Entry {
	entries := make([]Entry, len(rows))
	for i, row := range rows {
		entries[i] = Entry{
			Index:   uint64(i),
			Address: row.Address,
			Amount:  row.Amount,
		}
	}
	return entries
}

// ParseAmount parses a non negative base 10 integer that fits in a uint256.
func ParseAmount(s string) (*big.Int, bool) {
	amount, ok := new(big.Int).SetString(strings.TrimSpace(s), 10) //nolint:gomnd
	if !ok || amount.Sign() < 0 || amount.BitLen() > maxAmountBits {
		return nil, false
	}
	return amount, true
}
