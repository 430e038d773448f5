package server

import (
	"context"

	"github.com/zkairdrop/claim-service/claimctrl"
)

type claimController interface {
	ClaimL2(ctx context.Context, address string) (*claimctrl.ClaimDescriptor, error)
	ClaimL1(ctx context.Context, address, gasPriceGwei, rpcURL string) (*claimctrl.ClaimDescriptor, error)
	TransferData(to, amount string) (*claimctrl.TransferDescriptor, error)
}
