package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"lane-analytics-service/internal/adapters/lookup"
	"lane-analytics-service/internal/adapters/repositories"
	"lane-analytics-service/internal/domain"
	"lane-analytics-service/internal/services"

	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *services.Engine {
	t.Helper()

	source := repositories.NewMockAggregateSource([]domain.LaneAggregate{
		{OriginZip: "750", DestZip: "857", Volume: 100, AvgDelay: -0.5, TransitVariance: 1.0, EarlyCount: 40, OnTimeCount: 55, LateCount: 5},
		{OriginZip: "750", DestZip: "850", Volume: 200, AvgDelay: 1.2, TransitVariance: 1.5, EarlyCount: 10, OnTimeCount: 70, LateCount: 120},
	})
	locations := lookup.NewStaticLocationResolver()
	cache := services.NewLaneCache(source, locations, nil)
	return services.NewEngine(cache, locations, lookup.NewStaticCarrierResolver())
}

// runSession feeds newline-delimited requests through the server and returns
// one decoded response per line of output.
func runSession(t *testing.T, input string) []map[string]any {
	t.Helper()

	var out bytes.Buffer
	server := NewServer(newTestEngine(t), strings.NewReader(input), &out)
	require.NoError(t, server.Run(context.Background()))

	var responses []map[string]any
	scanner := bufio.NewScanner(&out)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		var resp map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &resp))
		responses = append(responses, resp)
	}
	require.NoError(t, scanner.Err())
	return responses
}

func TestInitializeHandshake(t *testing.T) {
	responses := runSession(t, `{"jsonrpc":"2.0","id":1,"method":"initialize"}`+"\n")
	require.Len(t, responses, 1)

	resp := responses[0]
	require.Equal(t, "2.0", resp["jsonrpc"])
	require.EqualValues(t, 1, resp["id"])

	result := resp["result"].(map[string]any)
	require.Equal(t, protocolVersion, result["protocolVersion"])
	info := result["serverInfo"].(map[string]any)
	require.Equal(t, "lane-analytics", info["name"])
}

func TestInitializedNotificationGetsNoReply(t *testing.T) {
	input := `{"jsonrpc":"2.0","method":"notifications/initialized"}` + "\n" +
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}` + "\n"
	responses := runSession(t, input)
	require.Len(t, responses, 1)
	require.EqualValues(t, 2, responses[0]["id"])
}

func TestToolsList(t *testing.T) {
	responses := runSession(t, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`+"\n")
	require.Len(t, responses, 1)

	result := responses[0]["result"].(map[string]any)
	tools := result["tools"].([]any)
	require.Len(t, tools, 10)

	names := make(map[string]bool)
	for _, raw := range tools {
		tool := raw.(map[string]any)
		names[tool["name"].(string)] = true
		require.NotEmpty(t, tool["description"])
		require.Contains(t, tool, "inputSchema")
	}
	require.True(t, names["get_lane_clusters"])
	require.True(t, names["get_lane_profile"])
	require.True(t, names["get_network_stats"])
}

func TestToolCallReturnsPrettyJSON(t *testing.T) {
	input := `{"jsonrpc":"2.0","id":7,"method":"tools/call","params":{"name":"get_lane_clusters","arguments":{}}}` + "\n"
	responses := runSession(t, input)
	require.Len(t, responses, 1)

	result := responses[0]["result"].(map[string]any)
	require.Nil(t, result["isError"])

	content := result["content"].([]any)
	require.Len(t, content, 1)
	block := content[0].(map[string]any)
	require.Equal(t, "text", block["type"])

	var clusters []map[string]any
	require.NoError(t, json.Unmarshal([]byte(block["text"].(string)), &clusters))
	require.Len(t, clusters, 5)
	require.Equal(t, "Early & Stable", clusters[0]["name"])
}

func TestToolCallLaneProfile(t *testing.T) {
	input := `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"get_lane_profile","arguments":{"origin":"750","dest":"857"}}}` + "\n"
	responses := runSession(t, input)

	result := responses[0]["result"].(map[string]any)
	block := result["content"].([]any)[0].(map[string]any)

	var lane map[string]any
	require.NoError(t, json.Unmarshal([]byte(block["text"].(string)), &lane))
	require.Equal(t, "DFW→TUS", lane["route"])
	require.Equal(t, 40.0, lane["early_pct"])
}

func TestUnknownToolReportedInBand(t *testing.T) {
	input := `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"no_such_tool","arguments":{}}}` + "\n"
	responses := runSession(t, input)

	result := responses[0]["result"].(map[string]any)
	block := result["content"].([]any)[0].(map[string]any)
	require.Contains(t, block["text"], "Unknown tool: no_such_tool")
}

func TestParseErrorResponse(t *testing.T) {
	responses := runSession(t, "this is not json\n")
	require.Len(t, responses, 1)

	resp := responses[0]
	require.Nil(t, resp["id"])
	rpcErr := resp["error"].(map[string]any)
	require.EqualValues(t, codeParseError, rpcErr["code"])
	require.Contains(t, rpcErr["message"], "Parse error")
}

func TestMethodNotFound(t *testing.T) {
	responses := runSession(t, `{"jsonrpc":"2.0","id":9,"method":"resources/list"}`+"\n")

	rpcErr := responses[0]["error"].(map[string]any)
	require.EqualValues(t, codeMethodNotFound, rpcErr["code"])
}
