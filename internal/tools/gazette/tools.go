// Package gazette exposes DOF retrieval as MCP tools, composing the HTTP
// client with the optional publication cache.
package gazette

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lexmex/lexmex-mcp/internal/dof"
	"github.com/lexmex/lexmex-mcp/internal/tools"
)

const (
	defaultSearchLimit = 20
	defaultLatestLimit = 10
)

// GetTools returns the gazette tool set. cache may be nil, in which case
// fetches go straight to the site and search_dof_cache is not offered.
func GetTools(client *dof.Client, cache *dof.Cache) []tools.Tool {
	set := []tools.Tool{
		NewSearchTool(client),
		NewGetDocumentTool(client, cache),
		NewSearchByTypeTool(client),
		NewLatestPublicationsTool(client),
	}
	if cache != nil {
		set = append(set, NewCacheSearchTool(cache))
	}
	return set
}

type SearchTool struct {
	client *dof.Client
}

func NewSearchTool(client *dof.Client) *SearchTool {
	return &SearchTool{client: client}
}

func (t *SearchTool) Name() string {
	return "search_dof"
}

func (t *SearchTool) Description() string {
	return "Search the Diario Oficial de la Federación for Mexican legislation"
}

func (t *SearchTool) Title() string {
	return "Search DOF"
}

func (t *SearchTool) Annotations() map[string]bool {
	return tools.GazetteAnnotations()
}

func (t *SearchTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"query": {
				"type": "string",
				"description": "Search query for legislation"
			},
			"limit": {
				"type": "integer",
				"description": "Maximum number of results",
				"default": 20
			}
		},
		"required": ["query"]
	}`)
}

func (t *SearchTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req struct {
		Query string `json:"query"`
		Limit int    `json:"limit"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, err
	}
	if req.Query == "" {
		return nil, fmt.Errorf("query is required")
	}
	if req.Limit <= 0 {
		req.Limit = defaultSearchLimit
	}

	results, err := t.client.Search(ctx, req.Query, req.Limit)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"query":   req.Query,
		"count":   len(results),
		"results": results,
	}, nil
}

type GetDocumentTool struct {
	client *dof.Client
	cache  *dof.Cache
}

func NewGetDocumentTool(client *dof.Client, cache *dof.Cache) *GetDocumentTool {
	return &GetDocumentTool{client: client, cache: cache}
}

func (t *GetDocumentTool) Name() string {
	return "get_dof_document"
}

func (t *GetDocumentTool) Description() string {
	return "Get full content of a DOF document by URL"
}

func (t *GetDocumentTool) Title() string {
	return "Get DOF Document"
}

func (t *GetDocumentTool) Annotations() map[string]bool {
	return tools.GazetteAnnotations()
}

func (t *GetDocumentTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"url": {
				"type": "string",
				"description": "URL of the DOF document"
			}
		},
		"required": ["url"]
	}`)
}

// Execute serves from the cache when possible and caches what it
// fetches.
func (t *GetDocumentTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, err
	}
	if req.URL == "" {
		return nil, fmt.Errorf("url is required")
	}

	if t.cache != nil {
		if pub, err := t.cache.GetByURL(req.URL); err == nil && pub != nil && pub.Content != "" {
			return map[string]interface{}{
				"url":     pub.URL,
				"content": pub.Content,
				"cached":  true,
			}, nil
		}
	}

	content, err := t.client.FetchDocument(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	if t.cache != nil {
		// Caching is best effort; the fetched content is still returned.
		_ = t.cache.Upsert(&dof.Publication{URL: req.URL, Title: req.URL, Content: content})
	}

	return map[string]interface{}{
		"url":     req.URL,
		"content": content,
		"cached":  false,
	}, nil
}

type SearchByTypeTool struct {
	client *dof.Client
}

func NewSearchByTypeTool(client *dof.Client) *SearchByTypeTool {
	return &SearchByTypeTool{client: client}
}

func (t *SearchByTypeTool) Name() string {
	return "search_by_document_type"
}

func (t *SearchByTypeTool) Description() string {
	return "Search DOF by document type (decreto, ley, reglamento, etc.)"
}

func (t *SearchByTypeTool) Title() string {
	return "Search DOF by Document Type"
}

func (t *SearchByTypeTool) Annotations() map[string]bool {
	return tools.GazetteAnnotations()
}

func (t *SearchByTypeTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"doc_type": {
				"type": "string",
				"enum": ["decreto", "ley", "reglamento", "acuerdo", "norma"],
				"description": "Type of document to search"
			},
			"query": {
				"type": "string",
				"description": "Additional search terms"
			},
			"limit": {
				"type": "integer",
				"description": "Maximum number of results",
				"default": 20
			}
		},
		"required": ["doc_type"]
	}`)
}

func (t *SearchByTypeTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req struct {
		DocType string `json:"doc_type"`
		Query   string `json:"query"`
		Limit   int    `json:"limit"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, err
	}
	if req.Limit <= 0 {
		req.Limit = defaultSearchLimit
	}

	results, err := t.client.SearchByType(ctx, req.DocType, req.Query, req.Limit)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"doc_type": req.DocType,
		"count":    len(results),
		"results":  results,
	}, nil
}

type LatestPublicationsTool struct {
	client *dof.Client
}

func NewLatestPublicationsTool(client *dof.Client) *LatestPublicationsTool {
	return &LatestPublicationsTool{client: client}
}

func (t *LatestPublicationsTool) Name() string {
	return "get_latest_publications"
}

func (t *LatestPublicationsTool) Description() string {
	return "Get latest DOF publications"
}

func (t *LatestPublicationsTool) Title() string {
	return "Get Latest DOF Publications"
}

func (t *LatestPublicationsTool) Annotations() map[string]bool {
	return tools.GazetteAnnotations()
}

func (t *LatestPublicationsTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"limit": {
				"type": "integer",
				"description": "Maximum number of results",
				"default": 10
			}
		}
	}`)
}

func (t *LatestPublicationsTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req struct {
		Limit int `json:"limit"`
	}
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, err
		}
	}
	if req.Limit <= 0 {
		req.Limit = defaultLatestLimit
	}

	results, err := t.client.LatestPublications(ctx, req.Limit)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"count":   len(results),
		"results": results,
	}, nil
}

type CacheSearchTool struct {
	cache *dof.Cache
}

func NewCacheSearchTool(cache *dof.Cache) *CacheSearchTool {
	return &CacheSearchTool{cache: cache}
}

func (t *CacheSearchTool) Name() string {
	return "search_dof_cache"
}

func (t *CacheSearchTool) Description() string {
	return "Full-text search over previously fetched DOF publications (works offline)"
}

func (t *CacheSearchTool) Title() string {
	return "Search DOF Cache"
}

func (t *CacheSearchTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *CacheSearchTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"query": {
				"type": "string",
				"description": "Full-text query"
			},
			"limit": {
				"type": "integer",
				"description": "Maximum number of results",
				"default": 20
			}
		},
		"required": ["query"]
	}`)
}

func (t *CacheSearchTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req struct {
		Query string `json:"query"`
		Limit int    `json:"limit"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, err
	}
	if req.Query == "" {
		return nil, fmt.Errorf("query is required")
	}
	if req.Limit <= 0 {
		req.Limit = defaultSearchLimit
	}

	results, err := t.cache.Search(req.Query, req.Limit)
	if err != nil {
		return nil, err
	}

	stats, err := t.cache.Stats()
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"query":   req.Query,
		"count":   len(results),
		"results": results,
		"stats":   stats,
	}, nil
}
