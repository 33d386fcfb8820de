package dof

import "time"

// DocumentSummary is one search hit or listed publication.
type DocumentSummary struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	URL     string `json:"url"`
	Summary string `json:"summary"`
	Type    string `json:"type"`
}

// Publication is a cached DOF document, keyed by URL.
type Publication struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	PubDate   string    `json:"pub_date"`
	DocType   string    `json:"doc_type"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
	FetchedAt time.Time `json:"fetched_at"`
}

// CacheStats reports the cache contents.
type CacheStats struct {
	Publications int64 `json:"publications"`
	WithContent  int64 `json:"with_content"`
}

// DocTypes are the document classes accepted by search_by_document_type.
var DocTypes = []string{"decreto", "ley", "reglamento", "acuerdo", "norma"}

func ValidDocType(t string) bool {
	for _, known := range DocTypes {
		if t == known {
			return true
		}
	}
	return false
}
