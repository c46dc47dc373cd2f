// Package deploy builds the deployment instructions shown for a contract
// template.
package deploy

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/serayd61/stacks-deployer/internal/catalog"
	"github.com/serayd61/stacks-deployer/internal/config"
)

// Warning is shown with every set of instructions.
const Warning = "Review the contract code carefully. Modify parameters like fees, addresses, and limits " +
	"according to your needs. Test on testnet before deploying to mainnet."

// PlatformFeeBasisPoints is the marketplace fee (2.5%).
const PlatformFeeBasisPoints = 250

// Instructions is everything needed to deploy one template.
type Instructions struct {
	ContractID string         `yaml:"contract_id"`
	Name       string         `yaml:"name"`
	Network    config.Network `yaml:"network"`
	Command    string         `yaml:"command"`
	SourceURL  string         `yaml:"source_url"`
	DocsURL    string         `yaml:"docs_url"`
	Warning    string         `yaml:"warning"`
}

// Command returns the Clarinet command that deploys rec.
func Command(rec catalog.Record) string {
	return "clarinet contract deploy " + rec.ID
}

// SourceURL returns the link to rec's Clarity source in the template repo.
func SourceURL(repoURL string, rec catalog.Record) string {
	return strings.TrimRight(repoURL, "/") + "/blob/main/contracts/" + rec.FileName
}

// ClarityDocsURL returns the Clarity smart contract guide under docsURL.
func ClarityDocsURL(docsURL string) string {
	return strings.TrimRight(docsURL, "/") + "/clarity/clarity-smart-contracts"
}

// For builds the instructions for rec under cfg.
func For(cfg config.Config, rec catalog.Record) Instructions {
	return Instructions{
		ContractID: rec.ID,
		Name:       rec.Name,
		Network:    cfg.Network,
		Command:    Command(rec),
		SourceURL:  SourceURL(cfg.RepoURL, rec),
		DocsURL:    ClarityDocsURL(cfg.DocsURL),
		Warning:    Warning,
	}
}

// PlatformFee returns the 2.5% platform fee on price, in the same unit
// (micro-STX), rounded down. The product is taken in 128 bits so no price
// overflows.
func PlatformFee(price uint64) uint64 {
	hi, lo := bits.Mul64(price, PlatformFeeBasisPoints)
	fee, _ := bits.Div64(hi, lo, 10000)
	return fee
}

// FormatSTX renders a micro-STX amount as STX with six decimals trimmed.
func FormatSTX(micro uint64) string {
	whole := micro / 1_000_000
	frac := micro % 1_000_000
	if frac == 0 {
		return fmt.Sprintf("%d STX", whole)
	}
	return strings.TrimRight(fmt.Sprintf("%d.%06d", whole, frac), "0") + " STX"
}

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

// Copy places text on the system clipboard.
func Copy(text string) error {
	if err := clipboardWrite(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
