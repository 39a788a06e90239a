package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"socialgraph/application/commands"
	"socialgraph/infrastructure/config"
	"socialgraph/infrastructure/di"
)

const routerDataset = `{
  "users": [
    {"id": "u1", "username": "alice", "attributes": {"age": 30, "gender": "female", "location": "Berlin"}},
    {"id": "u2", "username": "bob", "attributes": {"age": 22, "gender": "male", "location": "Oslo"}}
  ],
  "posts": [
    {"id": "p1", "author": "u1", "content": "hello world", "creation_time": "2024-01-01T10:00:00Z", "comments": ["c1"], "viewed_by": ["u2"]},
    {"id": "p2", "author": "u2", "content": "hi", "creation_time": "2024-01-02T10:00:00Z"}
  ],
  "comments": [
    {"id": "c1", "author": "u2", "post_id": "p1", "content": "nice", "creation_time": "2024-01-01T11:00:00Z"}
  ]
}`

// newTestServer wires the full stack against a temp dataset file. With built
// set, the initial graph build has already run.
func newTestServer(t *testing.T, built bool) http.Handler {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(path, []byte(routerDataset), 0o644))

	cfg := &config.Config{
		ServerAddress:   ":0",
		Environment:     "test",
		DatasetPath:     path,
		LogLevel:        "debug",
		CacheTTLSeconds: 60,
		EnableMetrics:   true,
		EnableCORS:      true,
	}

	logger := zaptest.NewLogger(t)

	validator := di.ProvideRecordValidator()
	graphs := di.ProvideGraphProvider()
	source := di.ProvideDatasetSource(cfg, logger)
	builder := di.ProvideGraphBuilder(validator, logger)
	filter := di.ProvidePostFilter(logger)
	ranker := di.ProvidePostRanker(logger)
	cache := di.ProvideInMemoryCache()
	metrics := di.ProvideMetrics()
	domainCfg := di.ProvideDomainConfig()

	queryBus, err := di.ProvideQueryBus(cfg, graphs, filter, ranker, domainCfg, cache, logger)
	require.NoError(t, err)
	commandBus, err := di.ProvideCommandBus(source, builder, graphs, cache, metrics, logger)
	require.NoError(t, err)

	if built {
		require.NoError(t, commandBus.Send(context.Background(), commands.RebuildGraphCommand{}))
	}

	return NewRouter(cfg, commandBus, queryBus, graphs, domainCfg, metrics, logger).Setup()
}

func doGet(t *testing.T, server http.Handler, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestRouter_HealthAndReadiness(t *testing.T) {
	server := newTestServer(t, false)

	rec, _ := doGet(t, server, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doGet(t, server, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	server = newTestServer(t, true)
	rec, _ = doGet(t, server, "/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_FilterPosts(t *testing.T) {
	server := newTestServer(t, true)

	rec, body := doGet(t, server, "/api/v1/posts?keyword=world&author.gender=female")
	require.Equal(t, http.StatusOK, rec.Code)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, []interface{}{"hello world"}, data["contents"])
	assert.Equal(t, float64(1), data["count"])
}

func TestRouter_TopPosts(t *testing.T) {
	server := newTestServer(t, true)

	rec, body := doGet(t, server, "/api/v1/posts/top?mode=views&n=1")
	require.Equal(t, http.StatusOK, rec.Code)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, []interface{}{"p1"}, data["highlighted_post_ids"])
	assert.Equal(t, "Social Media Graph: 1 Important Posts at the Top Sorted by Views", data["label"])
}

func TestRouter_TopPostsRejectsUnknownMode(t *testing.T) {
	server := newTestServer(t, true)

	rec, body := doGet(t, server, "/api/v1/posts/top?mode=likes")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_RANKING_MODE", body["code"])
}

func TestRouter_GraphData(t *testing.T) {
	server := newTestServer(t, true)

	rec, body := doGet(t, server, "/api/v1/graph-data?highlight=true&mode=comments&n=1")
	require.Equal(t, http.StatusOK, rec.Code)

	data := body["data"].(map[string]interface{})
	stats := data["stats"].(map[string]interface{})
	assert.Equal(t, float64(5), stats["node_count"])
	assert.Equal(t, float64(5), stats["edge_count"])
	assert.Equal(t, []interface{}{"p1"}, data["highlighted_post_ids"])
}

func TestRouter_WordCloud(t *testing.T) {
	server := newTestServer(t, true)

	rec, body := doGet(t, server, "/api/v1/wordcloud")
	require.Equal(t, http.StatusOK, rec.Code)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "hello world hi", data["text"])
}

func TestRouter_AdminReload(t *testing.T) {
	server := newTestServer(t, true)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/reload", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_QueriesBeforeFirstBuild(t *testing.T) {
	server := newTestServer(t, false)

	rec, _ := doGet(t, server, "/api/v1/posts")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
