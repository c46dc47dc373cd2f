package commands

import "github.com/serayd61/stacks-deployer/internal/deploy"

// FeeResult breaks a sale price into platform fee and seller proceeds, all in
// micro-STX.
type FeeResult struct {
	Price    uint64
	Fee      uint64
	Proceeds uint64
}

// Fee computes the marketplace platform fee for price.
func Fee(price uint64) FeeResult {
	fee := deploy.PlatformFee(price)
	return FeeResult{Price: price, Fee: fee, Proceeds: price - fee}
}
