package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nazliander/dbt-core/tests/testutil"
)

func TestBuildCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	outPath := filepath.Join(t.TempDir(), "manifest.json")

	cmd := exec.Command("go", "run", "./cmd/dbt-manifest", "build",
		"--artifacts", "fixtures/artifacts-sample.yaml",
		"--patch", "fixtures/schema-sample.yml",
		"--output", outPath,
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	require.FileExists(t, outPath)

	resolve := exec.Command("go", "run", "./cmd/dbt-manifest", "resolve",
		"--manifest", outPath,
		"--kind", "materialization",
		"--name", "table",
		"--adapter", "snowflake",
	)
	resolve.Dir = root
	out, err = resolve.CombinedOutput()
	require.NoError(t, err, string(out))
	require.Contains(t, string(out), "macro.dbt.materialization_table_default")
}
