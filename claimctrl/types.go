package claimctrl

import (
	"github.com/ethereum/go-ethereum/common"
)

// ClaimDescriptor is the ready to submit description of one or more claim transactions.
// Exactly one of CallToClaim and CallsToClaim is set.
type ClaimDescriptor struct {
	Address      string  `json:"address"`
	CallToClaim  *Call   `json:"call_to_claim,omitempty"`
	CallsToClaim []*Call `json:"calls_to_claim,omitempty"`
}

// Calls returns every call of the descriptor.
func (d *ClaimDescriptor) Calls() []*Call {
	if d.CallToClaim != nil {
		return []*Call{d.CallToClaim}
	}
	return d.CallsToClaim
}

// TransferDescriptor describes an L2 token transfer.
type TransferDescriptor struct {
	CallToTransfer *Call `json:"call_to_transfer"`
}

// Call is a contract call with its encoded call data.
type Call struct {
	To            string      `json:"to"`
	Function      string      `json:"function"`
	Params        interface{} `json:"params"`
	L1RawCalldata string      `json:"l1_raw_calldata,omitempty"`
	L2RawCalldata string      `json:"l2_raw_calldata,omitempty"`
	Value         string      `json:"value,omitempty"`
	GasPrice      string      `json:"gas_price,omitempty"`

	contract common.Address
	calldata []byte
}

// ClaimParams are the arguments of the distributor claim function.
type ClaimParams struct {
	Index       uint64   `json:"index"`
	Amount      string   `json:"amount"`
	MerkleProof []string `json:"merkle_proof"`
}

// L1TxParams are the fields of the bridgehub direct request, in contract order.
type L1TxParams struct {
	ChainID                  uint64   `json:"chainId"`
	MintValue                string   `json:"mintValue"`
	L2Contract               string   `json:"l2Contract"`
	L2Value                  uint64   `json:"l2Value"`
	L2Calldata               string   `json:"l2Calldata"`
	L2GasLimit               uint64   `json:"l2GasLimit"`
	L2GasPerPubdataByteLimit uint64   `json:"l2GasPerPubdataByteLimit"`
	FactoryDeps              []string `json:"factoryDeps"`
	RefundRecipient          string   `json:"refundRecipient"`
}

// TransferParams are the arguments of the ERC-20 transfer function.
type TransferParams struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
}
