package mcp

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/lexmex/lexmex-mcp/internal/docgen"
	"github.com/lexmex/lexmex-mcp/internal/legal"
	"github.com/lexmex/lexmex-mcp/internal/library"
	"github.com/lexmex/lexmex-mcp/internal/reason"
	"github.com/lexmex/lexmex-mcp/internal/tools"
	"github.com/lexmex/lexmex-mcp/internal/tools/analysis"
	"github.com/lexmex/lexmex-mcp/internal/tools/drafting"
	"github.com/lexmex/lexmex-mcp/pkg/version"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	lib := library.New()
	service := legal.NewService(
		legal.WithRenderer(docgen.NewEngine(lib)),
		legal.WithEvaluator(reason.NewEvaluator(lib)),
	)

	registry := tools.NewRegistry()
	for _, tool := range drafting.GetTools(service) {
		if err := registry.Register(tool); err != nil {
			t.Fatalf("register %s: %v", tool.Name(), err)
		}
	}
	for _, tool := range analysis.GetTools(service) {
		if err := registry.Register(tool); err != nil {
			t.Fatalf("register %s: %v", tool.Name(), err)
		}
	}
	if err := registry.Register(tools.NewHealthTool()); err != nil {
		t.Fatalf("register health: %v", err)
	}

	return NewServer(registry)
}

func TestInitializeNegotiation(t *testing.T) {
	server := newTestServer(t)

	resp := server.HandleRequest(&Request{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "initialize",
		Params: map[string]interface{}{
			"protocolVersion": "2025-03-26",
			"clientInfo":      map[string]interface{}{"name": "test-client", "version": "0.1"},
		},
	})
	if resp.Error != nil {
		t.Fatalf("initialize failed: %+v", resp.Error)
	}

	result := resp.Result.(map[string]interface{})
	if result["protocolVersion"] != "2025-03-26" {
		t.Errorf("supported client version must be echoed, got %v", result["protocolVersion"])
	}

	serverInfo := result["serverInfo"].(map[string]interface{})
	if serverInfo["version"] != version.Version {
		t.Errorf("unexpected server version: %v", serverInfo["version"])
	}
}

func TestInitializeUnsupportedVersionFallsBack(t *testing.T) {
	server := newTestServer(t)

	resp := server.HandleRequest(&Request{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "initialize",
		Params: map[string]interface{}{
			"protocolVersion": "1999-01-01",
		},
	})

	result := resp.Result.(map[string]interface{})
	if result["protocolVersion"] != version.ProtocolVersion {
		t.Errorf("expected fallback to %s, got %v", version.ProtocolVersion, result["protocolVersion"])
	}
}

func TestListTools(t *testing.T) {
	server := newTestServer(t)

	resp := server.HandleRequest(&Request{JSONRPC: "2.0", ID: 2, Method: "tools/list"})
	if resp.Error != nil {
		t.Fatalf("tools/list failed: %+v", resp.Error)
	}

	result := resp.Result.(map[string]interface{})
	listed := result["tools"].([]map[string]interface{})
	if len(listed) != 10 {
		t.Fatalf("expected 10 tools, got %d", len(listed))
	}

	names := map[string]bool{}
	for _, tool := range listed {
		names[tool["name"].(string)] = true
		if tool["inputSchema"] == nil {
			t.Errorf("tool %v has no input schema", tool["name"])
		}
	}
	for _, want := range []string{
		"generate_amparo", "generate_contract", "generate_lawsuit",
		"generate_power_of_attorney", "generate_will",
		"analyze_legal_case", "check_constitutional_rights",
		"analyze_contract_validity", "assess_criminal_liability",
		"health",
	} {
		if !names[want] {
			t.Errorf("tool %s not listed", want)
		}
	}
}

func TestCallToolWrapsResultAsContent(t *testing.T) {
	server := newTestServer(t)

	resp := server.HandleRequest(&Request{
		JSONRPC: "2.0",
		ID:      3,
		Method:  "tools/call",
		Params: map[string]interface{}{
			"name": "generate_will",
			"arguments": map[string]interface{}{
				"testador":  "Francisco Morales",
				"herederos": []interface{}{"Laura Morales"},
				"bienes":    []interface{}{"Casa en Coyoacán"},
			},
		},
	})
	if resp.Error != nil {
		t.Fatalf("tools/call failed: %+v", resp.Error)
	}

	result := resp.Result.(map[string]interface{})
	content := result["content"].([]map[string]interface{})
	if len(content) != 1 || content[0]["type"] != "text" {
		t.Fatalf("unexpected content shape: %+v", content)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(content[0]["text"].(string)), &payload); err != nil {
		t.Fatalf("content text is not JSON: %v", err)
	}
	if !strings.Contains(payload["rendered_text"].(string), "Francisco Morales") {
		t.Error("rendered document missing testator name")
	}
}

func TestCallToolStructuredError(t *testing.T) {
	server := newTestServer(t)

	resp := server.HandleRequest(&Request{
		JSONRPC: "2.0",
		ID:      4,
		Method:  "tools/call",
		Params: map[string]interface{}{
			"name":      "generate_will",
			"arguments": map[string]interface{}{},
		},
	})
	if resp.Error == nil {
		t.Fatal("expected error for missing required fields")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("expected code -32602, got %d", resp.Error.Code)
	}

	data, ok := resp.Error.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("expected structured error data, got %T", resp.Error.Data)
	}
	if data["kind"] != legal.KindMissingRequiredField {
		t.Errorf("wrong error kind: %v", data["kind"])
	}
}

func TestCallUnknownTool(t *testing.T) {
	server := newTestServer(t)

	resp := server.HandleRequest(&Request{
		JSONRPC: "2.0",
		ID:      5,
		Method:  "tools/call",
		Params:  map[string]interface{}{"name": "summon_judge"},
	})
	if resp.Error == nil || resp.Error.Code != -32601 {
		t.Errorf("expected -32601, got %+v", resp.Error)
	}
}

func TestUnknownMethod(t *testing.T) {
	server := newTestServer(t)

	resp := server.HandleRequest(&Request{JSONRPC: "2.0", ID: 6, Method: "resources/list"})
	if resp.Error == nil || resp.Error.Code != -32601 {
		t.Errorf("expected -32601, got %+v", resp.Error)
	}
}

func TestProcessStream(t *testing.T) {
	server := newTestServer(t)

	input := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05"}}`,
		`this is not json`,
		`{"jsonrpc":"2.0","id":2,"method":"ping"}`,
	}, "\n") + "\n"

	var out strings.Builder
	if err := server.ProcessStream(strings.NewReader(input), &out); err != nil {
		t.Fatalf("ProcessStream failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 responses, got %d: %s", len(lines), out.String())
	}

	var second Response
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if second.Error == nil || second.Error.Code != -32700 {
		t.Errorf("expected parse error for malformed line, got %+v", second.Error)
	}

	// The bad line must not break the request after it.
	var third Response
	if err := json.Unmarshal([]byte(lines[2]), &third); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if third.Error != nil {
		t.Errorf("ping after malformed line failed: %+v", third.Error)
	}
}
