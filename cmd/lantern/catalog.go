// Catalog commands: browse the shared indicator catalog and import curated
// catalog files.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/impact-mesh/lantern/pkg/catalog"
	"github.com/impact-mesh/lantern/pkg/types"
)

var (
	catalogDomain   string
	catalogMaturity string
	catalogSearch   string
	catalogLimit    int
	catalogOffset   int
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse and import the indicator catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active catalog indicators",
	Long: `List queries the shared indicator catalog. Domain and maturity
filters intersect; the search term matches name, code, or definition.

Example:
  lantern catalog list
  lantern catalog list --domain communication --maturity expert
  lantern catalog list --search coverage --limit 10
  lantern catalog list --json`,
	Args: cobra.NoArgs,
	RunE: runCatalogList,
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <file.jsonl>",
	Short: "Import a curated catalog file",
	Long: `Import upserts indicators from a JSONL file, one indicator per
line, keyed by code. Existing codes are updated in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogImport,
}

func init() {
	catalogListCmd.Flags().StringVar(&catalogDomain, "domain", "", "filter by domain (\"all\" for no filter)")
	catalogListCmd.Flags().StringVar(&catalogMaturity, "maturity", "", "filter by maturity tier (\"all\" for no filter)")
	catalogListCmd.Flags().StringVar(&catalogSearch, "search", "", "free-text search over name, code, definition")
	catalogListCmd.Flags().IntVar(&catalogLimit, "limit", 0, "maximum number of results (0 = no limit)")
	catalogListCmd.Flags().IntVar(&catalogOffset, "offset", 0, "number of leading results to skip")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogImportCmd)
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	svc := catalog.NewService(backend)
	indicators, err := svc.Query(cmd.Context(), types.CatalogFilter{
		Domain:   catalogDomain,
		Maturity: catalogMaturity,
		Search:   catalogSearch,
		Limit:    catalogLimit,
		Offset:   catalogOffset,
	})
	if err != nil {
		return fmt.Errorf("list catalog: %w", err)
	}

	if flagJSON {
		return printJSON(indicators)
	}

	printIndicatorTable(indicators)
	return nil
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	indicators, err := catalog.ReadJSONLFile(args[0])
	if err != nil {
		return fmt.Errorf("read catalog file: %w", err)
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	svc := catalog.NewService(backend)
	n, err := svc.Import(cmd.Context(), indicators)
	if err != nil {
		return fmt.Errorf("import catalog: %w", err)
	}

	fmt.Printf("Imported %d indicator(s)\n", n)
	return nil
}

// printIndicatorTable prints indicators in a human-readable table format.
func printIndicatorTable(indicators []*types.Indicator) {
	if len(indicators) == 0 {
		fmt.Println("No indicators found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "CODE\tNAME\tDOMAIN\tMATURITY\tUNIT")
	fmt.Fprintln(w, "----\t----\t------\t--------\t----")
	for _, ind := range indicators {
		name := ind.Name
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			ind.Code, name, ind.Domain, ind.Maturity, ind.Unit)
	}
	w.Flush()

	output := sb.String()
	for _, line := range strings.Split(output, "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d indicator(s)\n", len(indicators))
}
