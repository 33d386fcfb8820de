package mcp

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/lexmex/lexmex-mcp/internal/tools"
	"github.com/lexmex/lexmex-mcp/pkg/protocol"
)

// Server speaks newline-delimited JSON-RPC 2.0 over a byte stream,
// normally stdin/stdout. One request is handled at a time; the tools
// themselves are safe for concurrent use but the stdio framing is
// inherently sequential.
type Server struct {
	registry *tools.Registry
	handler  *Handler
}

func NewServer(registry *tools.Registry) *Server {
	return &Server{
		registry: registry,
		handler:  NewHandler(registry),
	}
}

func (s *Server) HandleRequest(req *Request) *Response {
	return s.handler.Handle(req)
}

// ProcessStream reads requests line by line until EOF. Malformed lines
// produce a parse error response and processing continues; a single bad
// request never affects the next one.
func (s *Server) ProcessStream(reader io.Reader, writer io.Writer) error {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	encoder := json.NewEncoder(writer)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			resp := &Response{
				JSONRPC: "2.0",
				ID:      nil,
				Error: &protocol.JSONRPCError{
					Code:    -32700,
					Message: "Parse error",
				},
			}
			encoder.Encode(resp)
			continue
		}

		resp := s.HandleRequest(&req)
		if err := encoder.Encode(resp); err != nil {
			return err
		}
	}

	return scanner.Err()
}

func (s *Server) Registry() *tools.Registry {
	return s.registry
}
