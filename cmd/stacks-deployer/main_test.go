package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/serayd61/stacks-deployer/internal/catalog"
	"github.com/serayd61/stacks-deployer/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

const testnetAddr = "ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM"

// run executes the command tree with args against a throwaway home directory.
func run(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv(config.NetworkEnv, "")

	verbose, configPath = false, ""
	listCategory, listSearch, listFormat = "", "", "text"
	showCopy, showSource = false, false
	fetchDir = ""
	walletAddress, walletNetwork, walletYes = "", "", false
	configInitNetwork, configInitForce = "", false

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "stacks-deployer "+version+"\n", out)
}

func TestList(t *testing.T) {
	out, err := run(t, t.TempDir(), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "NFT Marketplace (nft-marketplace) [NFT]")
	assert.Contains(t, out, "+2 more")
	assert.Contains(t, out, "25 of 25 contracts")
}

func TestList_CategoryAndSearch(t *testing.T) {
	out, err := run(t, t.TempDir(), "list", "--category", "dao", "--search", "voting")
	require.NoError(t, err)
	assert.Contains(t, out, "(dao-voting)")
	assert.NotContains(t, out, "(staking-pool)")
	assert.Contains(t, out, "3 of 25 contracts")
}

func TestList_NoMatches(t *testing.T) {
	out, err := run(t, t.TempDir(), "list", "--search", "zzz")
	require.NoError(t, err)
	assert.Contains(t, out, "No contracts found.")
}

func TestList_YAML(t *testing.T) {
	out, err := run(t, t.TempDir(), "list", "--format", "yaml", "-c", "defi")
	require.NoError(t, err)

	var got []catalog.Record
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 5)
	assert.Equal(t, catalog.CategoryDeFi, got[0].Category)
	assert.NotEmpty(t, got[0].FileName)
}

func TestList_Errors(t *testing.T) {
	_, err := run(t, t.TempDir(), "list", "--format", "json")
	assert.ErrorContains(t, err, `unknown format "json"`)

	_, err = run(t, t.TempDir(), "list", "--category", "games")
	assert.ErrorContains(t, err, `unknown category "games"`)
}

func TestShow(t *testing.T) {
	out, err := run(t, t.TempDir(), "show", "flash-loan")
	require.NoError(t, err)
	assert.Contains(t, out, "Flash Loan [DeFi]")
	assert.Contains(t, out, "✓ Callback System")
	assert.Contains(t, out, "$ clarinet contract deploy flash-loan")
	assert.Contains(t, out, "/blob/main/contracts/flash-loan.clar")
	assert.Contains(t, out, "Before deploying")
}

func TestShow_NotFound(t *testing.T) {
	_, err := run(t, t.TempDir(), "show", "nope")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestDeploy(t *testing.T) {
	out, err := run(t, t.TempDir(), "deploy", "lottery", "nft-marketplace")
	require.NoError(t, err)
	lottery := bytes.Index([]byte(out), []byte("deploy lottery"))
	market := bytes.Index([]byte(out), []byte("deploy nft-marketplace"))
	require.NotEqual(t, -1, lottery)
	require.NotEqual(t, -1, market)
	assert.Less(t, lottery, market)
}

func TestCategoriesAndStats(t *testing.T) {
	out, err := run(t, t.TempDir(), "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "All (25)")
	assert.Contains(t, out, "DeFi")

	out, err = run(t, t.TempDir(), "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Smart Contracts")
	assert.Contains(t, out, "Clarity 3.0")
}

func TestFee(t *testing.T) {
	out, err := run(t, t.TempDir(), "fee", "100000000")
	require.NoError(t, err)
	assert.Contains(t, out, "2500000 µSTX (2.5 STX)")
	assert.Contains(t, out, "97500000 µSTX (97.5 STX)")

	_, err = run(t, t.TempDir(), "fee", "abc")
	assert.ErrorContains(t, err, "invalid price")
}

func TestWalletLifecycle(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "wallet", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "No wallet connected (testnet)")

	out, err = run(t, home, "wallet", "connect", "--address", testnetAddr)
	require.NoError(t, err)
	assert.Contains(t, out, "Connected ST1PQH...GZGM on testnet")

	out, err = run(t, home, "wallet", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Address:   "+testnetAddr)

	out, err = run(t, home, "wallet", "disconnect", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Wallet disconnected.")

	out, err = run(t, home, "wallet", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "No wallet connected")
}

func TestWalletConnect_RejectsWrongNetwork(t *testing.T) {
	_, err := run(t, t.TempDir(), "wallet", "connect", "--address", testnetAddr, "--network", "mainnet")
	assert.ErrorContains(t, err, "SP or SM")
}

func TestConfigInitAndShow(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "custom.yaml")

	out, err := run(t, home, "--config", path, "config", "init", "--network", "mainnet")
	require.NoError(t, err)
	assert.Contains(t, out, "network: mainnet")

	out, err = run(t, home, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "network: mainnet")
	assert.Contains(t, out, "repo_url: "+config.DefaultRepoURL)

	out, err = run(t, home, "--config", path, "config", "init", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "network: testnet")
}

func TestFeatureSummary(t *testing.T) {
	assert.Equal(t, "a, b", featureSummary([]string{"a", "b"}))
	assert.Equal(t, "a, b, c, +2 more", featureSummary([]string{"a", "b", "c", "d", "e"}))
}

func TestFetchAndShowSource(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "contracts"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "contracts", "lottery.clar"), []byte("(define-constant ticket-price u1000000)\n"), 0644))
	for _, args := range [][]string{
		{"init"},
		{"config", "user.email", "test@test.com"},
		{"config", "user.name", "Test"},
		{"add", "."},
		{"commit", "-m", "templates"},
	} {
		require.NoError(t, exec.Command("git", append([]string{"-C", src}, args...)...).Run())
	}

	home := t.TempDir()
	cfgPath := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("repo_url: file://"+src+"\n"), 0644))

	_, err := run(t, home, "show", "lottery", "--source")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stacks-deployer fetch")

	out, err := run(t, home, "fetch", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Cloned templates at "+filepath.Join(home, ".stacks-deployer", "templates"))

	out, err = run(t, home, "fetch", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Updated templates")

	out, err = run(t, home, "show", "lottery", "--source")
	require.NoError(t, err)
	assert.Equal(t, "(define-constant ticket-price u1000000)\n", out)
}
