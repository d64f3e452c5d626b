// Evidence commands: link and unlink evidence records to project entities,
// and list existing links.
package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/impact-mesh/lantern/pkg/evidence"
	"github.com/impact-mesh/lantern/pkg/types"
)

var (
	linksEvidenceID string
	linksKind       string
	linksEntityID   string
)

var evidenceCmd = &cobra.Command{
	Use:   "evidence",
	Short: "Link evidence records to project entities",
}

var evidenceLinkCmd = &cobra.Command{
	Use:   "link <evidence-id> <entity-kind> <entity-id>",
	Short: "Link an evidence record to an entity",
	Long: fmt.Sprintf(`Link associates an evidence record with a project entity. Entity
kinds: %s. Linking an already-linked pair reports
"already linked" and succeeds.

Example:
  lantern evidence link ev-7 activity act-3`, entityKindList()),
	Args: cobra.ExactArgs(3),
	RunE: runEvidenceLink,
}

var evidenceUnlinkCmd = &cobra.Command{
	Use:   "unlink <evidence-id> <entity-kind> <entity-id>",
	Short: "Remove an evidence link",
	Long:  `Unlink removes the link between an evidence record and an entity. Unlinking a never-linked pair is a no-op.`,
	Args:  cobra.ExactArgs(3),
	RunE:  runEvidenceUnlink,
}

var evidenceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List evidence links",
	Long: `List shows links filtered by evidence record, by entity, or both.

Example:
  lantern evidence list --evidence ev-7
  lantern evidence list --kind activity --entity act-3`,
	Args: cobra.NoArgs,
	RunE: runEvidenceList,
}

func init() {
	evidenceListCmd.Flags().StringVar(&linksEvidenceID, "evidence", "", "filter by evidence record id")
	evidenceListCmd.Flags().StringVar(&linksKind, "kind", "", "filter by entity kind ("+entityKindList()+")")
	evidenceListCmd.Flags().StringVar(&linksEntityID, "entity", "", "filter by entity id (requires --kind)")

	evidenceCmd.AddCommand(evidenceLinkCmd)
	evidenceCmd.AddCommand(evidenceUnlinkCmd)
	evidenceCmd.AddCommand(evidenceListCmd)
}

// entityKindList renders the linkable entity kinds for help text.
func entityKindList() string {
	kinds := make([]string, len(types.EntityKinds))
	for i, k := range types.EntityKinds {
		kinds[i] = string(k)
	}
	return strings.Join(kinds, ", ")
}

func runEvidenceLink(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	svc := evidence.NewService(backend)
	err = svc.Link(cmd.Context(), args[0], types.EntityKind(args[1]), args[2])
	if errors.Is(err, types.ErrDuplicate) {
		fmt.Println("Already linked.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("link evidence: %w", err)
	}

	fmt.Println("Linked.")
	return nil
}

func runEvidenceUnlink(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	svc := evidence.NewService(backend)
	if err := svc.Unlink(cmd.Context(), args[0], types.EntityKind(args[1]), args[2]); err != nil {
		return fmt.Errorf("unlink evidence: %w", err)
	}

	fmt.Println("Unlinked.")
	return nil
}

func runEvidenceList(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	svc := evidence.NewService(backend)
	links, err := svc.Links(cmd.Context(), types.LinkFilter{
		EvidenceID: linksEvidenceID,
		EntityKind: types.EntityKind(linksKind),
		EntityID:   linksEntityID,
	})
	if err != nil {
		return fmt.Errorf("list evidence links: %w", err)
	}

	if flagJSON {
		return printJSON(links)
	}

	printLinkTable(links)
	return nil
}

// printLinkTable prints evidence links in a human-readable table format.
func printLinkTable(links []*types.EvidenceLink) {
	if len(links) == 0 {
		fmt.Println("No links found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "EVIDENCE\tKIND\tENTITY\tCREATED")
	fmt.Fprintln(w, "--------\t----\t------\t-------")
	for _, l := range links {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			l.EvidenceID, l.EntityKind, l.EntityID, l.CreatedAt.Format("2006-01-02"))
	}
	w.Flush()

	output := sb.String()
	for _, line := range strings.Split(output, "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d link(s)\n", len(links))
}
