package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lane-analytics-service/internal/adapters/lookup"
	"lane-analytics-service/internal/adapters/repositories"
	"lane-analytics-service/internal/domain"
	"lane-analytics-service/internal/services"

	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, source *repositories.MockAggregateSource) *httptest.Server {
	t.Helper()

	locations := lookup.NewStaticLocationResolver()
	carriers := lookup.NewStaticCarrierResolver()
	cache := services.NewLaneCache(source, locations, nil)
	engine := services.NewEngine(cache, locations, carriers)

	srv := httptest.NewServer(NewRouter(engine))
	t.Cleanup(srv.Close)
	return srv
}

func fixtureSource() *repositories.MockAggregateSource {
	return repositories.NewMockAggregateSource([]domain.LaneAggregate{
		{OriginZip: "750", DestZip: "857", Volume: 100, AvgDelay: -0.5, TransitVariance: 1.0, EarlyCount: 40, OnTimeCount: 55, LateCount: 5},
		{OriginZip: "750", DestZip: "850", Volume: 200, AvgDelay: 1.2, TransitVariance: 1.5, EarlyCount: 10, OnTimeCount: 70, LateCount: 120},
		{OriginZip: "606", DestZip: "100", Volume: 150, AvgDelay: 0.1, TransitVariance: 4.2, EarlyCount: 30, OnTimeCount: 60, LateCount: 60},
	})
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, fixtureSource())

	var body map[string]string
	resp := getJSON(t, srv.URL+"/health", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", body["status"])
}

func TestStatsEndpoint(t *testing.T) {
	srv := newTestServer(t, fixtureSource())

	var body map[string]any
	resp := getJSON(t, srv.URL+"/api/v1/stats", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.EqualValues(t, 450, body["total_shipments"])
	require.EqualValues(t, 3, body["total_lanes"])
}

func TestLanesEndpointLimit(t *testing.T) {
	srv := newTestServer(t, fixtureSource())

	var lanes []map[string]any
	resp := getJSON(t, srv.URL+"/api/v1/lanes?limit=2", &lanes)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, lanes, 2)

	first := lanes[0]
	require.Equal(t, "DFW→TUS", first["route"])
	require.Equal(t, 40.0, first["early_rate"]) // one-decimal percent, not a fraction
	require.Equal(t, "Early & Stable", first["cluster_name"])
}

func TestLaneProfileNotFound(t *testing.T) {
	srv := newTestServer(t, fixtureSource())

	var body map[string]string
	resp := getJSON(t, srv.URL+"/api/v1/lanes/ZZZ/777", &body)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "lane not found", body["error"])
}

func TestClustersEndpoint(t *testing.T) {
	srv := newTestServer(t, fixtureSource())

	var clusters []map[string]any
	resp := getJSON(t, srv.URL+"/api/v1/clusters", &clusters)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, clusters, 5)
}

func TestPlaybookEndpointErrors(t *testing.T) {
	srv := newTestServer(t, fixtureSource())

	resp := getJSON(t, srv.URL+"/api/v1/clusters/9/playbook", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = getJSON(t, srv.URL+"/api/v1/clusters/abc/playbook", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSimilarSearchRequiresPattern(t *testing.T) {
	srv := newTestServer(t, fixtureSource())

	resp := getJSON(t, srv.URL+"/api/v1/search/similar", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	resp = getJSON(t, srv.URL+"/api/v1/search/similar?lane=ZZZ999", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Nil(t, body["target_lane"])
}

func TestRegionNotFound(t *testing.T) {
	srv := newTestServer(t, fixtureSource())

	resp := getJSON(t, srv.URL+"/api/v1/regions/ZZZ", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCacheInvalidateEndpoint(t *testing.T) {
	source := fixtureSource()
	srv := newTestServer(t, source)

	// Warm the cache, invalidate, then read again: the store must be hit twice.
	resp := getJSON(t, srv.URL+"/api/v1/lanes", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	post, err := http.Post(srv.URL+"/api/v1/cache/invalidate", "application/json", nil)
	require.NoError(t, err)
	post.Body.Close()
	require.Equal(t, http.StatusOK, post.StatusCode)

	resp = getJSON(t, srv.URL+"/api/v1/lanes", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.EqualValues(t, 2, source.Calls())
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, fixtureSource())

	post, err := http.Post(srv.URL+"/api/v1/stats", "application/json", nil)
	require.NoError(t, err)
	post.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, post.StatusCode)
}

func TestStoreFailureReturnsGenericError(t *testing.T) {
	source := fixtureSource()
	source.Err = errors.New("connection refused")
	srv := newTestServer(t, source)

	var body map[string]string
	resp := getJSON(t, srv.URL+"/api/v1/stats", &body)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, "internal server error", body["error"])
}
