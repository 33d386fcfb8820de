package tools

import (
	"errors"
	"fmt"

	"github.com/lexmex/lexmex-mcp/internal/legal"
)

type ToolError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *ToolError) Error() string {
	return e.Message
}

func NewToolNotFoundError(name string) *ToolError {
	return &ToolError{
		Code:    -32601,
		Message: fmt.Sprintf("Tool not found: %s", name),
	}
}

func NewToolAlreadyRegisteredError(name string) *ToolError {
	return &ToolError{
		Code:    -32603,
		Message: fmt.Sprintf("Tool already registered: %s", name),
	}
}

// FromError converts a tool failure into its JSON-RPC representation.
// Structured core errors are invalid-params failures carrying the error
// kind and offending fields; everything else is an internal error.
func FromError(name string, err error) *ToolError {
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return toolErr
	}

	var legalErr *legal.Error
	if errors.As(err, &legalErr) {
		return &ToolError{
			Code:    -32602,
			Message: legalErr.Message,
			Data: map[string]interface{}{
				"kind":   legalErr.Kind,
				"fields": legalErr.Fields,
			},
		}
	}

	return &ToolError{
		Code:    -32603,
		Message: fmt.Sprintf("Error executing tool %s: %v", name, err),
	}
}
