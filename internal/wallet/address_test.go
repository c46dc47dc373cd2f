package wallet

import (
	"testing"

	"github.com/serayd61/stacks-deployer/internal/config"
	"github.com/stretchr/testify/assert"
)

const (
	testnetAddr = "ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM"
	mainnetAddr = "SP2J6ZY48GV1EZ5V2V5RB9MP66SW86PYKKNRV9EJ7"
)

func TestValidateAddress(t *testing.T) {
	assert.NoError(t, ValidateAddress(config.NetworkTestnet, testnetAddr))
	assert.NoError(t, ValidateAddress(config.NetworkMainnet, mainnetAddr))
}

func TestValidateAddress_WrongNetwork(t *testing.T) {
	err := ValidateAddress(config.NetworkMainnet, testnetAddr)
	assert.ErrorContains(t, err, "must start with SP or SM")

	err = ValidateAddress(config.NetworkTestnet, mainnetAddr)
	assert.ErrorContains(t, err, "must start with ST or SN")
}

func TestValidateAddress_Rejects(t *testing.T) {
	assert.ErrorContains(t, ValidateAddress(config.NetworkTestnet, ""), "empty")
	assert.ErrorContains(t, ValidateAddress(config.NetworkTestnet, "ST123"), "characters")
	// 'O' and 'I' are not in the c32 alphabet.
	assert.ErrorContains(t, ValidateAddress(config.NetworkTestnet, "ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGO"), "invalid character")
	assert.ErrorContains(t, ValidateAddress(config.NetworkTestnet, "st1pqhqkv0rjxzfy1dgx8mnsnyve3vgzjsrtpgzgm"), "must start with")
	assert.ErrorContains(t, ValidateAddress("devnet", testnetAddr), "unknown network")
}

func TestTruncateAddress(t *testing.T) {
	assert.Equal(t, "ST1PQH...GZGM", TruncateAddress(testnetAddr))
	assert.Equal(t, "", TruncateAddress(""))
	assert.Equal(t, "ST12345678", TruncateAddress("ST12345678"))
	assert.Equal(t, "ST1234...5678", TruncateAddress("ST12345X5678"))
}
