package etherman

import (
	"github.com/zkairdrop/claim-service/etherman/smartcontracts/bridgehub"
)

// L2TransactionRequestDirect is the argument of requestL2TransactionDirect.
type L2TransactionRequestDirect = bridgehub.L2TransactionRequestDirect
