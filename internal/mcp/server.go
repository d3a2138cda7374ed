package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"lane-analytics-service/internal/services"
)

const protocolVersion = "2024-11-05"

// JSON-RPC 2.0 error codes used by the protocol layer.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
)

// maxLineBytes bounds a single request line. Tool arguments are tiny; this
// mostly guards against a runaway client.
const maxLineBytes = 1 << 20

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type callParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// toolContent is the MCP tool-result envelope: one text block holding the
// pretty-printed JSON payload.
type toolContent struct {
	Content []contentBlock `json:"content"`
	IsError bool           `json:"isError,omitempty"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Server speaks MCP over newline-delimited JSON-RPC on a reader/writer pair,
// normally stdin/stdout. It must stay silent on those streams outside of
// responses; diagnostics belong on stderr behind a debug flag.
type Server struct {
	Engine *services.Engine
	In     io.Reader
	Out    io.Writer
}

func NewServer(engine *services.Engine, in io.Reader, out io.Writer) *Server {
	return &Server{Engine: engine, In: in, Out: out}
}

// Run reads requests line by line until EOF or context cancellation.
// Malformed lines get a -32700 response instead of killing the loop.
func (s *Server) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.In)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req rpcRequest
		if err := json.Unmarshal(line, &req); err != nil {
			resp := rpcResponse{
				JSONRPC: "2.0",
				ID:      json.RawMessage("null"),
				Error:   &rpcError{Code: codeParseError, Message: fmt.Sprintf("Parse error: %v", err)},
			}
			if err := s.write(resp); err != nil {
				return err
			}
			continue
		}

		resp, reply := s.handle(ctx, req)
		if !reply {
			continue
		}
		if err := s.write(resp); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// handle dispatches one request. The second return is false for
// notifications, which get no response line.
func (s *Server) handle(ctx context.Context, req rpcRequest) (rpcResponse, bool) {
	id := req.ID
	if id == nil {
		id = json.RawMessage("null")
	}
	resp := rpcResponse{JSONRPC: "2.0", ID: id}

	switch req.Method {
	case "initialize":
		resp.Result = map[string]any{
			"protocolVersion": protocolVersion,
			"capabilities":    map[string]any{"tools": map[string]any{}},
			"serverInfo": map[string]any{
				"name":    "lane-analytics",
				"version": "1.0.0",
			},
		}
	case "tools/list":
		resp.Result = map[string]any{"tools": toolDefs}
	case "tools/call":
		var params callParams
		if req.Params == nil || json.Unmarshal(req.Params, &params) != nil {
			resp.Error = &rpcError{Code: codeMethodNotFound, Message: "Missing params"}
			break
		}
		resp.Result = s.callTool(ctx, params.Name, params.Arguments)
	case "notifications/initialized":
		return rpcResponse{}, false
	default:
		resp.Error = &rpcError{Code: codeMethodNotFound, Message: "Method not found"}
	}

	return resp, true
}

// callTool runs a tool and wraps its payload. Engine failures become a
// tool-level error result rather than a protocol error.
func (s *Server) callTool(ctx context.Context, name string, args json.RawMessage) toolContent {
	payload, err := s.dispatchTool(ctx, name, args)
	if err != nil {
		return toolContent{
			Content: []contentBlock{{Type: "text", Text: fmt.Sprintf("Error: %v", err)}},
			IsError: true,
		}
	}

	text, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return toolContent{
			Content: []contentBlock{{Type: "text", Text: fmt.Sprintf("Error: %v", err)}},
			IsError: true,
		}
	}
	return toolContent{Content: []contentBlock{{Type: "text", Text: string(text)}}}
}

func (s *Server) write(resp rpcResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}
	data = append(data, '\n')
	if _, err := s.Out.Write(data); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
