package dof

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// PrefetchLatest fetches the newest publications' full text with bounded
// parallelism and warms the cache with them. Individual fetch failures
// are logged and skipped; the listing error is the only hard failure.
func (c *Client) PrefetchLatest(ctx context.Context, cache *Cache, limit int) (int, error) {
	summaries, err := c.LatestPublications(ctx, limit)
	if err != nil {
		return 0, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	fetched := make(chan Publication, len(summaries))
	for _, summary := range summaries {
		summary := summary
		g.Go(func() error {
			content, err := c.FetchDocument(ctx, summary.URL)
			if err != nil {
				log.Warn("prefetch failed", "url", summary.URL, "error", err)
				return nil
			}
			fetched <- Publication{
				URL:     summary.URL,
				Title:   summary.Title,
				PubDate: summary.Date,
				DocType: summary.Type,
				Summary: summary.Summary,
				Content: content,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	close(fetched)

	stored := 0
	for pub := range fetched {
		if err := cache.Upsert(&pub); err != nil {
			log.Warn("cache publication", "url", pub.URL, "error", err)
			continue
		}
		stored++
	}

	return stored, nil
}
