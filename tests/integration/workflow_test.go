// Package integration tests the full lantern workflow through the service
// layer against a real SQLite backend: catalog import and query, bulk
// attachment with conflict reconciliation, and evidence link lifecycle.
package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impact-mesh/lantern/internal/sqlite"
	"github.com/impact-mesh/lantern/pkg/attach"
	"github.com/impact-mesh/lantern/pkg/catalog"
	"github.com/impact-mesh/lantern/pkg/evidence"
	"github.com/impact-mesh/lantern/pkg/types"
)

// newTestBackend creates a backend attached to a temp directory.
func newTestBackend(t *testing.T) *sqlite.Backend {
	t.Helper()
	b := sqlite.NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}))
	t.Cleanup(func() { b.Detach() })
	return b
}

const catalogJSONL = `{"code":"COM-01","name":"Coverage Rate","domain":"communication","maturity":"expert","definition":"Share of the target population reached.","unit":"%","data_source":"annual survey","default_baseline":"10","default_target":"80"}
{"code":"COM-02","name":"Message Recall","domain":"communication","maturity":"foundation","definition":"Share of audience recalling key messages.","unit":"%"}
{"code":"EDU-01","name":"Completion Rate","domain":"education","maturity":"intermediate","definition":"Share of enrolled participants completing the course.","unit":"%"}
{"code":"EDU-02","name":"Retired Metric","domain":"education","maturity":"foundation","definition":"No longer collected.","unit":"n","active":false}
`

// seedCatalog imports the test catalog from a JSONL file, the same path the
// CLI import command takes, and returns the active indicators in catalog order.
func seedCatalog(t *testing.T, b *sqlite.Backend) []*types.Indicator {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "catalog.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(catalogJSONL), 0o644))

	indicators, err := catalog.ReadJSONLFile(path)
	require.NoError(t, err)

	svc := catalog.NewService(b)
	n, err := svc.Import(ctx, indicators)
	require.NoError(t, err)
	require.Equal(t, 4, n)

	active, err := svc.Query(ctx, types.CatalogFilter{})
	require.NoError(t, err)
	return active
}

func TestCatalogImportAndQuery(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	active := seedCatalog(t, b)

	t.Run("inactive indicators are hidden", func(t *testing.T) {
		require.Len(t, active, 3)
		for _, ind := range active {
			assert.NotEqual(t, "EDU-02", ind.Code, "inactive indicator returned from catalog query")
		}
	})

	t.Run("results ordered by domain then code", func(t *testing.T) {
		var codes []string
		for _, ind := range active {
			codes = append(codes, ind.Code)
		}
		assert.Equal(t, []string{"COM-01", "COM-02", "EDU-01"}, codes)
	})

	t.Run("every curated field lands", func(t *testing.T) {
		assert.Equal(t, "annual survey", active[0].DataSource)
		assert.Equal(t, "10", active[0].DefaultBaseline)
		assert.Equal(t, "80", active[0].DefaultTarget)
	})

	t.Run("filters intersect", func(t *testing.T) {
		svc := catalog.NewService(b)
		got, err := svc.Query(ctx, types.CatalogFilter{Domain: "communication", Maturity: types.MaturityExpert})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "COM-01", got[0].Code)
	})

	t.Run("search is case-insensitive over name, code, definition", func(t *testing.T) {
		svc := catalog.NewService(b)
		got, err := svc.Query(ctx, types.CatalogFilter{Search: "COVERAGE"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "COM-01", got[0].Code)
	})

	t.Run("reimport upserts by code and keeps ids", func(t *testing.T) {
		svc := catalog.NewService(b)
		before := active[0]

		// Curated files carry no ids; the store keys the upsert by code.
		updated := *before
		updated.IndicatorID = ""
		updated.Name = "Coverage Rate (revised)"
		_, err := svc.Import(ctx, []*types.Indicator{&updated})
		require.NoError(t, err)

		got, err := svc.Query(ctx, types.CatalogFilter{Search: "revised"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, before.IndicatorID, got[0].IndicatorID, "upsert must keep the indicator id")
	})
}

func TestAttachWorkflow(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	active := seedCatalog(t, b)

	svc := attach.NewService(b)
	ids := []string{active[0].IndicatorID, active[1].IndicatorID, active[2].IndicatorID}

	t.Run("fresh attach inserts all", func(t *testing.T) {
		result, err := svc.Attach(ctx, "proj-1", ids[:2], &types.AttachDefaults{Baseline: "10", Target: "80"})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Inserted)
		assert.Equal(t, 0, result.Skipped)
	})

	t.Run("partial overlap skips attached, inserts new", func(t *testing.T) {
		result, err := svc.Attach(ctx, "proj-1", ids, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Inserted)
		assert.Equal(t, 2, result.Skipped)
	})

	t.Run("repeat attach is a no-op", func(t *testing.T) {
		result, err := svc.Attach(ctx, "proj-1", ids, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Inserted)
		assert.Equal(t, 3, result.Skipped)
	})

	t.Run("projects are isolated", func(t *testing.T) {
		result, err := svc.Attach(ctx, "proj-2", ids[:1], nil)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Inserted)
	})

	t.Run("attached state survives reattach", func(t *testing.T) {
		dir := t.TempDir()
		b2 := sqlite.NewBackend()
		require.NoError(t, b2.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
		_, err := attach.NewService(b2).Attach(ctx, "proj-9", ids[:1], nil)
		require.NoError(t, err)
		require.NoError(t, b2.Detach())

		require.NoError(t, b2.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
		defer b2.Detach()

		attached, err := b2.AttachedIndicatorIDs(ctx, "proj-9")
		require.NoError(t, err)
		assert.True(t, attached[ids[0]], "attachment lost across detach/attach cycle")
	})
}

func TestEvidenceLinkLifecycle(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	svc := evidence.NewService(b)

	t.Run("link then list", func(t *testing.T) {
		require.NoError(t, svc.Link(ctx, "ev-1", types.KindActivity, "act-1"))
		require.NoError(t, svc.Link(ctx, "ev-1", types.KindIndicator, "ind-1"))

		links, err := svc.Links(ctx, types.LinkFilter{EvidenceID: "ev-1"})
		require.NoError(t, err)
		assert.Len(t, links, 2)
	})

	t.Run("duplicate link is benign", func(t *testing.T) {
		err := svc.Link(ctx, "ev-1", types.KindActivity, "act-1")
		require.ErrorIs(t, err, types.ErrDuplicate)

		links, err := svc.Links(ctx, types.LinkFilter{EvidenceID: "ev-1"})
		require.NoError(t, err)
		assert.Len(t, links, 2, "duplicate link must not add a row")
	})

	t.Run("same entity id under different kinds", func(t *testing.T) {
		require.NoError(t, svc.Link(ctx, "ev-2", types.KindAsset, "shared-7"))
		require.NoError(t, svc.Link(ctx, "ev-2", types.KindPublication, "shared-7"))

		links, err := svc.Links(ctx, types.LinkFilter{EntityKind: types.KindAsset, EntityID: "shared-7"})
		require.NoError(t, err)
		assert.Len(t, links, 1)
	})

	t.Run("unlink removes only the named triple", func(t *testing.T) {
		require.NoError(t, svc.Unlink(ctx, "ev-1", types.KindActivity, "act-1"))

		links, err := svc.Links(ctx, types.LinkFilter{EvidenceID: "ev-1"})
		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, types.KindIndicator, links[0].EntityKind)
	})

	t.Run("unlink of absent link is a no-op", func(t *testing.T) {
		assert.NoError(t, svc.Unlink(ctx, "ev-1", types.KindActivity, "never-linked"))
	})

	t.Run("relink after unlink succeeds", func(t *testing.T) {
		assert.NoError(t, svc.Link(ctx, "ev-1", types.KindActivity, "act-1"))
	})
}

func TestOperationsAfterDetach(t *testing.T) {
	b := sqlite.NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}))
	require.NoError(t, b.Detach())

	ctx := context.Background()
	_, err := b.QueryCatalog(ctx, types.CatalogFilter{})
	assert.ErrorIs(t, err, types.ErrDetached)
	_, err = b.AttachedIndicatorIDs(ctx, "proj-1")
	assert.ErrorIs(t, err, types.ErrDetached)
	_, err = b.QueryLinks(ctx, types.LinkFilter{EvidenceID: "ev-1"})
	assert.ErrorIs(t, err, types.ErrDetached)
}
