package tests

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ib-77/outcome/examples/pipeline/records"
	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/chain"
	"github.com/ib-77/outcome/pkg/rop/solo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recordsYAML = `
- {id: a1, name: Alice, email: alice@example.com, age: 30, active: true}
- {id: b2, name: Bob, email: bob-at-example.com, age: 41, active: true}
- {id: c3, name: Carol, email: carol@example.com, age: 16, active: true}
- {id: d4, name: Dan, email: dan@example.com, age: 52, active: false}
`

// TestPipelineEndToEnd runs fetch, validate, transform and persist over a
// temporary file and checks what reaches the output.
func TestPipelineEndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.yaml")
	require.NoError(t, os.WriteFile(path, []byte(recordsYAML), 0o600))

	results := processFile(t, path, 18)

	assert.Equal(t, []string{
		"a1: adult",
		"b2: [422] email: failed \"email\" validation",
		"c3: [422] age 16 below minimum 18",
		"d4: [500] inactive record",
	}, results.lines)

	out := results.output.String()
	assert.Contains(t, out, "id: a1")
	assert.NotContains(t, out, "id: c3")
}

func TestPipelineMissingFile(t *testing.T) {
	recs, err := records.Load(filepath.Join(t.TempDir(), "missing.yaml")).OrElseRaise(nil)
	assert.Nil(t, recs)
	require.Error(t, err)
	assert.True(t, rop.IsFailureError(err))
	assert.True(t, strings.Contains(err.Error(), "fetch"))
}

type processed struct {
	lines  []string
	output bytes.Buffer
}

func processFile(t *testing.T, path string, minAge int) *processed {
	t.Helper()
	ctx := context.Background()

	recs := records.Load(path)
	require.True(t, recs.IsSuccess(), recs.String())

	p := records.NewPipeline(minAge)
	res := &processed{}
	var profiles []records.Profile

	for _, r := range recs.Value() {
		line := chain.Finally(chain.Start(ctx, p.Process(ctx, r)),
			func(_ context.Context, pr records.Profile) string {
				profiles = append(profiles, pr)
				return fmt.Sprintf("%s: %s", pr.ID, pr.Bracket)
			},
			func(_ context.Context, code int, hint string) string {
				return fmt.Sprintf("%s: [%d] %s", r.ID, code, hint)
			})
		res.lines = append(res.lines, line)
	}

	persisted := records.Persist(&res.output, profiles)
	require.True(t, solo.Finally(persisted,
		func(rop.Unit) bool { return true },
		func(int, string) bool { return false }))

	return res
}
