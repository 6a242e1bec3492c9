package discussions

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"discussion-urls/pkg/domain"
)

// Config holds generator settings.
type Config struct {
	// Timeout bounds each page-1 request.
	Timeout time.Duration

	// Delay is the pause between consecutive app fetches; zero disables
	// pacing.
	Delay time.Duration
}

// Generator produces the full URL record stream for a list of app IDs.
// Apps are processed strictly in order, one request at a time.
type Generator struct {
	fetcher Fetcher
	timeout time.Duration
	limiter *rate.Limiter
}

// NewGenerator creates a generator that fetches first pages through fetcher.
func NewGenerator(fetcher Fetcher, cfg Config) *Generator {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.Delay > 0 {
		limiter = rate.NewLimiter(rate.Every(cfg.Delay), 1)
	}

	return &Generator{
		fetcher: fetcher,
		timeout: cfg.Timeout,
		limiter: limiter,
	}
}

// Generate streams one record per result page for each app ID, in input
// order: the base URL first, then pages 2..N ascending. When the page count
// cannot be determined the app degrades to a single record instead of being
// dropped. The channel is closed once all IDs are processed.
func (g *Generator) Generate(ctx context.Context, appIDs []string) <-chan domain.URLRecord {
	records := make(chan domain.URLRecord)

	go func() {
		defer close(records)

		for _, appID := range appIDs {
			if g.limiter != nil {
				if err := g.limiter.Wait(ctx); err != nil {
					return
				}
			}

			maxPage := g.maxPageFor(ctx, appID)

			if !emit(ctx, records, domain.URLRecord{AppID: appID, URL: BaseURL(appID)}) {
				return
			}
			for page := 2; page <= maxPage; page++ {
				if !emit(ctx, records, domain.URLRecord{AppID: appID, URL: PageURL(appID, page)}) {
					return
				}
			}
		}
	}()

	return records
}

// maxPageFor downloads the first result page for appID and extracts the page
// count. Fetch or parse failures degrade to 1.
func (g *Generator) maxPageFor(ctx context.Context, appID string) int {
	url := BaseURL(appID)

	fetchCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	doc, err := g.fetcher.FetchDocument(fetchCtx, url)
	if err != nil {
		log.Warn().Err(err).Str("app_id", appID).Msg("page count detection failed, assuming single page")
		return 1
	}

	maxPage := MaxPage(doc)
	log.Debug().Str("app_id", appID).Int("pages", maxPage).Msg("detected result pages")
	return maxPage
}

func emit(ctx context.Context, records chan<- domain.URLRecord, rec domain.URLRecord) bool {
	select {
	case records <- rec:
		return true
	case <-ctx.Done():
		return false
	}
}
