package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/serayd61/stacks-deployer/internal/catalog"
	"github.com/serayd61/stacks-deployer/internal/commands"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	listCategory string
	listSearch   string
	listFormat   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List contract templates",
	Long:  "Lists the contract catalog, optionally filtered by category and a case-insensitive search over name, description and features.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.List(commands.ListOptions{
			Category: listCategory,
			Search:   listSearch,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch listFormat {
		case "", "text":
			printRecordList(out, result)
			return nil
		case "yaml":
			data, err := yaml.Marshal(result.Records)
			if err != nil {
				return fmt.Errorf("marshaling records: %w", err)
			}
			_, err = out.Write(data)
			return err
		default:
			return fmt.Errorf("unknown format %q (want text or yaml)", listFormat)
		}
	},
}

func printRecordList(out io.Writer, result *commands.ListResult) {
	if len(result.Records) == 0 {
		fmt.Fprintln(out, "No contracts found.")
		fmt.Fprintln(out, "Try adjusting your search or filter criteria.")
		return
	}

	for _, r := range result.Records {
		meta, _ := catalog.Meta(r.Category)
		fmt.Fprintf(out, "%s %s (%s) [%s]\n", meta.Icon, r.Name, r.ID, meta.DisplayName)
		fmt.Fprintf(out, "    %s\n", r.Description)
		fmt.Fprintf(out, "    %s  ·  %s\n", featureSummary(r.Features), r.FileName)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d of %d contracts\n", len(result.Records), result.Total)
}

// featureSummary shows the first three features and "+N more".
func featureSummary(features []string) string {
	const shown = 3
	if len(features) <= shown {
		return strings.Join(features, ", ")
	}
	return fmt.Sprintf("%s, +%d more", strings.Join(features[:shown], ", "), len(features)-shown)
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Only list one category (nft, token, defi, dao, utility)")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Case-insensitive search over name, description and features")
	listCmd.Flags().StringVar(&listFormat, "format", "text", "Output format: text or yaml")
}
