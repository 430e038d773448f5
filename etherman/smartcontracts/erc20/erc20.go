package erc20

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// MethodTransfer is the ERC-20 transfer function
const MethodTransfer = "transfer"

// Erc20MetaData contains the subset of the ERC-20 ABI used by the claim service.
var Erc20MetaData = &bind.MetaData{
	ABI: "[{\"inputs\":[{\"internalType\":\"address\",\"name\":\"to\",\"type\":\"address\"},{\"internalType\":\"uint256\",\"name\":\"amount\",\"type\":\"uint256\"}],\"name\":\"transfer\",\"outputs\":[{\"internalType\":\"bool\",\"name\":\"\",\"type\":\"bool\"}],\"stateMutability\":\"nonpayable\",\"type\":\"function\"}]",
}

// PackTransfer encodes transfer(address,uint256).
func PackTransfer(to common.Address, amount *big.Int) ([]byte, error) {
	parsed, err := Erc20MetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	return parsed.Pack(MethodTransfer, to, amount)
}
