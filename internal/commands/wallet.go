package commands

import (
	"errors"

	"github.com/serayd61/stacks-deployer/internal/config"
	"github.com/serayd61/stacks-deployer/internal/wallet"
)

// WalletStatusResult describes the current wallet session for display.
type WalletStatusResult struct {
	Network  config.Network
	SignedIn bool
	Address  string
	Short    string
}

// WalletStatus reads the session through the adapter.
func WalletStatus(a wallet.Adapter, network config.Network) WalletStatusResult {
	res := WalletStatusResult{Network: network}
	if a == nil {
		return res
	}
	res.SignedIn = a.IsSignedIn()
	if addr, ok := a.Address(); ok {
		res.Address = addr
		res.Short = wallet.TruncateAddress(addr)
	}
	return res
}

// ErrSessionUnavailable is returned when a connect could not be persisted.
// Details are in the log.
var ErrSessionUnavailable = errors.New("wallet session unavailable, see log for details")

// WalletConnect validates address for network and records it as the session.
// A nil adapter yields ErrSessionUnavailable.
func WalletConnect(a wallet.Adapter, network config.Network, address string) error {
	if err := wallet.ValidateAddress(network, address); err != nil {
		return err
	}
	if a == nil {
		return ErrSessionUnavailable
	}
	var p wallet.Profile
	if network == config.NetworkMainnet {
		p.STXAddress.Mainnet = address
	} else {
		p.STXAddress.Testnet = address
	}
	a.Connect(p)
	if !a.IsSignedIn() {
		return ErrSessionUnavailable
	}
	return nil
}

// WalletDisconnect ends the session.
func WalletDisconnect(a wallet.Adapter) {
	if a != nil {
		a.Disconnect()
	}
}
