package cli_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trends/trends_api/internal/api"
	"github.com/trends/trends_api/internal/cli"
	"github.com/trends/trends_api/internal/config"
	"github.com/trends/trends_api/internal/errlocal"
	"github.com/trends/trends_api/internal/logging"
	"github.com/trends/trends_api/internal/models"
	storemocks "github.com/trends/trends_api/internal/store/mocks"
)

var testTrend = models.Trend{
	ID:    uuid.MustParse("b7c6d5e4-f3a2-4b1c-9d8e-7f6a5b4c3d2e"),
	Name:  "golang",
	Score: 9.5,
}

func newTestAPI(t *testing.T) (*httptest.Server, *storemocks.Store) {
	t.Helper()

	store := storemocks.NewStore(t)
	srv := api.NewServer(config.Config{}, store, logging.NewNopLogger())
	ts := httptest.NewServer(srv.InitRouter())
	t.Cleanup(ts.Close)

	return ts, store
}

func run(server string, args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = cli.Execute(context.Background(), append([]string{"--server", server}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitOK},
		{"not found", errlocal.NewErrNotFound("x", "", nil), cli.ExitNotFound},
		{"not found with empty message", errlocal.NewErrNotFound("", "", nil), cli.ExitNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", errlocal.NotFoundf("trend %d not found", 42)), cli.ExitNotFound},
		{"bad request", errlocal.NewErrBadRequest("x", "", nil), cli.ExitBadRequest},
		{"conflict", errlocal.NewErrConflict("x", "", nil), cli.ExitConflict},
		{"too many requests", errlocal.NewErrTooManyRequests("x"), cli.ExitTooManyRequests},
		{"internal", errlocal.NewErrInternal("x", "", nil), cli.ExitInternal},
		{"plain error", errors.New("x"), cli.ExitInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cli.ExitCode(tt.err))
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	ts, store := newTestAPI(t)

	msg := "trend " + testTrend.ID.String() + " not found"
	store.EXPECT().
		GetTrend(mock.Anything, testTrend.ID).
		Return((*models.Trend)(nil), errlocal.NewErrNotFound(msg, "store", nil))

	code, stdout, stderr := run(ts.URL, "get", testTrend.ID.String())

	assert.Equal(t, cli.ExitNotFound, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "Error (not_found): "+msg+"\n", stderr)
}

func TestGet_Success(t *testing.T) {
	ts, store := newTestAPI(t)
	store.EXPECT().GetTrend(mock.Anything, testTrend.ID).Return(&testTrend, nil)

	code, stdout, stderr := run(ts.URL, "get", testTrend.ID.String())

	require.Equal(t, cli.ExitOK, code, stderr)
	assert.Contains(t, stdout, `"name": "golang"`)
}

func TestGet_InvalidID(t *testing.T) {
	code, _, stderr := run("http://127.0.0.1:1", "get", "nope")

	assert.Equal(t, cli.ExitBadRequest, code)
	assert.Contains(t, stderr, "invalid trend id")
}

func TestGetByName_NotFound(t *testing.T) {
	ts, store := newTestAPI(t)
	store.EXPECT().
		GetTrendByName(mock.Anything, "cobol").
		Return((*models.Trend)(nil), errlocal.NotFoundf("trend %q not found", "cobol"))

	code, _, stderr := run(ts.URL, "get-by-name", "cobol")

	assert.Equal(t, cli.ExitNotFound, code)
	assert.Contains(t, stderr, `trend "cobol" not found`)
}

func TestList(t *testing.T) {
	ts, store := newTestAPI(t)
	store.EXPECT().ListTrends(mock.Anything, 5, 10).Return([]models.Trend{testTrend}, nil)

	code, stdout, _ := run(ts.URL, "list", "--limit", "5", "--offset", "10")

	assert.Equal(t, cli.ExitOK, code)
	assert.Contains(t, stdout, testTrend.ID.String())
}

func TestCreate_Conflict(t *testing.T) {
	ts, store := newTestAPI(t)
	store.EXPECT().
		CreateTrend(mock.Anything, mock.MatchedBy(func(tr *models.Trend) bool {
			return tr.Name == "golang" && tr.Description == "gophers" && tr.Score == 2
		})).
		Return(errlocal.NewErrConflict(`trend "golang" already exists`, "store", nil))

	code, _, stderr := run(ts.URL, "create", "golang", "-d", "gophers", "--score", "2")

	assert.Equal(t, cli.ExitConflict, code)
	assert.Contains(t, stderr, "already exists")
}

func TestScore(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ts, store := newTestAPI(t)
		store.EXPECT().UpdateTrendScore(mock.Anything, testTrend.ID, 42.5).Return(nil)

		code, stdout, _ := run(ts.URL, "score", testTrend.ID.String(), "42.5")

		assert.Equal(t, cli.ExitOK, code)
		assert.Contains(t, stdout, "scored 42.5")
	})

	t.Run("invalid score", func(t *testing.T) {
		code, _, stderr := run("http://127.0.0.1:1", "score", testTrend.ID.String(), "high")

		assert.Equal(t, cli.ExitBadRequest, code)
		assert.Contains(t, stderr, "invalid score")
	})

	t.Run("missing argument", func(t *testing.T) {
		code, _, _ := run("http://127.0.0.1:1", "score", testTrend.ID.String())

		assert.Equal(t, cli.ExitBadRequest, code)
	})
}

func TestDelete_NotFound(t *testing.T) {
	ts, store := newTestAPI(t)
	store.EXPECT().
		DeleteTrend(mock.Anything, testTrend.ID).
		Return(errlocal.NewErrNotFound("", "store", nil))

	code, _, stderr := run(ts.URL, "delete", testTrend.ID.String())

	assert.Equal(t, cli.ExitNotFound, code)
	assert.Equal(t, "Error (not_found): \n", stderr)
}

func TestServerFromEnv(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/health", r.URL.Path)
		_, _ = w.Write([]byte("true"))
	}))
	t.Cleanup(ts.Close)
	t.Setenv("TRENDS_SERVER", ts.URL)

	var out, errOut bytes.Buffer
	code := cli.Execute(context.Background(), []string{"health"}, &out, &errOut)

	assert.Equal(t, cli.ExitOK, code, errOut.String())
	assert.Equal(t, "ok\n", out.String())
}

func TestUnknownFlag(t *testing.T) {
	code, _, _ := run("http://127.0.0.1:1", "list", "--bogus")

	assert.Equal(t, cli.ExitBadRequest, code)
}

func TestUnknownCommand(t *testing.T) {
	code, stdout, stderr := run("http://127.0.0.1:1", "frobnicate")

	assert.Equal(t, cli.ExitBadRequest, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `Error (bad_request): unknown command "frobnicate" for "trendsctl"`)
}

func TestUnknownCommand_Suggests(t *testing.T) {
	code, _, stderr := run("http://127.0.0.1:1", "lst")

	assert.Equal(t, cli.ExitBadRequest, code)
	assert.Contains(t, stderr, "did you mean")
	assert.Contains(t, stderr, "list")
}

func TestNoCommandPrintsHelp(t *testing.T) {
	code, stdout, _ := run("http://127.0.0.1:1")

	assert.Equal(t, cli.ExitOK, code)
	assert.Contains(t, stdout, "Available Commands")
}

func TestImport(t *testing.T) {
	writeFile := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "trends.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("success", func(t *testing.T) {
		ts, store := newTestAPI(t)
		store.EXPECT().
			ImportTrends(mock.Anything, mock.MatchedBy(func(trends []*models.Trend) bool {
				return len(trends) == 2 && trends[1].Name == "rust" && trends[1].Score == 4
			})).
			Return(nil)

		path := writeFile(t, `[{"name":"golang"},{"name":"rust","score":4}]`)
		code, stdout, stderr := run(ts.URL, "import", path)

		require.Equal(t, cli.ExitOK, code, stderr)
		assert.Contains(t, stdout, `"imported": 2`)
	})

	t.Run("invalid record exits as bad request", func(t *testing.T) {
		ts, _ := newTestAPI(t)

		path := writeFile(t, `[{"name":"golang"},{"name":"rust","score":-1}]`)
		code, _, stderr := run(ts.URL, "import", path)

		assert.Equal(t, cli.ExitBadRequest, code)
		assert.Contains(t, stderr, "validation failed")
	})

	t.Run("duplicate exits as conflict", func(t *testing.T) {
		ts, store := newTestAPI(t)
		store.EXPECT().
			ImportTrends(mock.Anything, mock.Anything).
			Return(errlocal.NewErrConflict(`trend "golang" already exists`, "store", nil))

		code, _, _ := run(ts.URL, "import", writeFile(t, `[{"name":"golang"}]`))

		assert.Equal(t, cli.ExitConflict, code)
	})

	t.Run("malformed file", func(t *testing.T) {
		code, _, stderr := run("http://127.0.0.1:1", "import", writeFile(t, `{"name":"golang"}`))

		assert.Equal(t, cli.ExitBadRequest, code)
		assert.Contains(t, stderr, "invalid trends file")
	})

	t.Run("empty file", func(t *testing.T) {
		code, _, stderr := run("http://127.0.0.1:1", "import", writeFile(t, `[]`))

		assert.Equal(t, cli.ExitBadRequest, code)
		assert.Contains(t, stderr, "no trends to import")
	})

	t.Run("missing file", func(t *testing.T) {
		code, _, _ := run("http://127.0.0.1:1", "import", filepath.Join(t.TempDir(), "nope.json"))

		assert.Equal(t, cli.ExitNotFound, code)
	})
}

func TestPurge(t *testing.T) {
	t.Run("requires confirmation", func(t *testing.T) {
		code, _, stderr := run("http://127.0.0.1:1", "purge")

		assert.Equal(t, cli.ExitBadRequest, code)
		assert.Contains(t, stderr, "--yes")
	})

	t.Run("success", func(t *testing.T) {
		ts, store := newTestAPI(t)
		store.EXPECT().DeleteAllTrends(mock.Anything).Return(int64(3), nil)

		code, stdout, stderr := run(ts.URL, "purge", "--yes")

		require.Equal(t, cli.ExitOK, code, stderr)
		assert.Equal(t, "3 trends deleted\n", stdout)
	})
}

func TestGetByName_WithSlash(t *testing.T) {
	ts, store := newTestAPI(t)
	store.EXPECT().
		GetTrendByName(mock.Anything, "ci/cd").
		Return(&models.Trend{ID: testTrend.ID, Name: "ci/cd"}, nil)

	code, stdout, stderr := run(ts.URL, "get-by-name", "ci/cd")

	require.Equal(t, cli.ExitOK, code, stderr)
	assert.Contains(t, stdout, `"name": "ci/cd"`)
}
