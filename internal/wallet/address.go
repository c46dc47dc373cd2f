package wallet

import (
	"fmt"
	"strings"

	"github.com/serayd61/stacks-deployer/internal/config"
)

// c32 alphabet used by Stacks addresses (Crockford base32 without I, L, O, U).
const c32Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const (
	minAddressLen = 28
	maxAddressLen = 41
)

// versionPrefixes lists the standard (single-sig, multi-sig) address prefixes
// per network.
var versionPrefixes = map[config.Network][]string{
	config.NetworkMainnet: {"SP", "SM"},
	config.NetworkTestnet: {"ST", "SN"},
}

// ValidateAddress checks that addr looks like a standard Stacks principal for
// the given network. It does not verify the c32 checksum.
func ValidateAddress(network config.Network, addr string) error {
	prefixes, ok := versionPrefixes[network]
	if !ok {
		return fmt.Errorf("unknown network %q", network)
	}
	if addr == "" {
		return fmt.Errorf("address is empty")
	}
	if len(addr) < minAddressLen || len(addr) > maxAddressLen {
		return fmt.Errorf("address must be %d-%d characters, got %d", minAddressLen, maxAddressLen, len(addr))
	}

	hasPrefix := false
	for _, p := range prefixes {
		if strings.HasPrefix(addr, p) {
			hasPrefix = true
			break
		}
	}
	if !hasPrefix {
		return fmt.Errorf("%s address must start with %s", network, strings.Join(prefixes, " or "))
	}

	for i, r := range addr[1:] {
		if !strings.ContainsRune(c32Alphabet, r) {
			return fmt.Errorf("invalid character %q at position %d", r, i+1)
		}
	}
	return nil
}

// TruncateAddress shortens an address for display: first 6 and last 4
// characters joined by "...". Short inputs are returned unchanged.
func TruncateAddress(addr string) string {
	r := []rune(addr)
	if len(r) <= 10 {
		return addr
	}
	return string(r[:6]) + "..." + string(r[len(r)-4:])
}
