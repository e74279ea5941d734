// internal/storefront/loader.go
package storefront

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/eventrix/eventrix-backend/internal/filter"
	"github.com/eventrix/eventrix-backend/internal/metrics"
	"github.com/eventrix/eventrix-backend/internal/models"
)

// ErrStale is returned by Load when a newer load started before this one
// finished. The stale result is discarded.
var ErrStale = errors.New("storefront: superseded by a newer load")

// Fetcher is the read side of the catalog API.
type Fetcher interface {
	CategoryProducts(ctx context.Context, categoryID string) (*CategoryListing, error)
	Reviews(ctx context.Context, productID string) ([]models.Review, error)
	Sidebar(ctx context.Context, categoryID string) (*models.SidebarView, error)
}

// Listing is one fully loaded category page.
type Listing struct {
	Generation   uint64
	CategoryID   string
	CategoryName string
	Products     []models.ListedProduct
	Sidebar      *models.SidebarView
	MinPrice     float64
	MaxPrice     float64
}

// Loader fetches category pages. Each Load gets a generation number and
// cancels the load before it; only the newest generation is committed.
type Loader struct {
	fetcher     Fetcher
	concurrency int
	log         *logrus.Entry

	mu      sync.Mutex
	gen     uint64
	cancel  context.CancelFunc
	current *Listing
}

func NewLoader(fetcher Fetcher, concurrency int, log *logrus.Entry) *Loader {
	if concurrency < 1 {
		concurrency = 1
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Loader{fetcher: fetcher, concurrency: concurrency, log: log}
}

// Load fetches products, facet configuration and per-product reviews for
// categoryID. Fetch failures degrade to empty data; the only errors are
// ErrStale and the caller's own context error.
func (l *Loader) Load(ctx context.Context, categoryID string) (*Listing, error) {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	gen := l.gen
	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.mu.Unlock()
	defer cancel()

	log := l.log.WithFields(logrus.Fields{"category_id": categoryID, "generation": gen})

	var (
		listing *CategoryListing
		sidebar *models.SidebarView
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := l.fetcher.CategoryProducts(gctx, categoryID)
		if err != nil {
			log.WithError(err).Warn("Failed to fetch category products")
			return nil
		}
		listing = res
		return nil
	})
	g.Go(func() error {
		res, err := l.fetcher.Sidebar(gctx, categoryID)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				log.WithError(err).Warn("Failed to fetch sidebar config")
			}
			return nil
		}
		sidebar = res
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, l.staleOr(gen, err)
	}

	result := &Listing{Generation: gen, CategoryID: categoryID, Sidebar: sidebar}
	var products []models.Product
	if listing != nil {
		result.CategoryName = listing.CategoryName
		products = listing.Products
	}

	summaries := l.fetchSummaries(ctx, log, products)
	if err := ctx.Err(); err != nil {
		return nil, l.staleOr(gen, err)
	}

	result.Products = models.Annotate(products, summaries)
	result.MinPrice, result.MaxPrice = filter.PriceBounds(result.Products)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return nil, ErrStale
	}
	l.current = result
	return result, nil
}

func (l *Loader) fetchSummaries(ctx context.Context, log *logrus.Entry, products []models.Product) map[uuid.UUID]models.ReviewSummary {
	summaries := make(map[uuid.UUID]models.ReviewSummary, len(products))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)
	for _, p := range products {
		id := p.ID
		g.Go(func() error {
			reviews, err := l.fetcher.Reviews(gctx, id.String())
			if err != nil {
				log.WithError(err).WithField("product_id", id).Debug("Failed to fetch reviews")
				return nil
			}
			summary := models.SummarizeReviews(id, reviews)
			mu.Lock()
			summaries[id] = summary
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return summaries
}

// staleOr reports ErrStale when a newer load cancelled this one.
func (l *Loader) staleOr(gen uint64, err error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return ErrStale
	}
	return err
}

// Current returns the most recently committed listing, or nil.
func (l *Loader) Current() *Listing {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}

// Filter applies c to the current listing. Empty criteria return a copy of
// every product without counting an evaluation.
func (l *Loader) Filter(c filter.Criteria) []models.ListedProduct {
	current := l.Current()
	if current == nil {
		return []models.ListedProduct{}
	}
	if c.IsEmpty() {
		all := make([]models.ListedProduct, len(current.Products))
		copy(all, current.Products)
		return all
	}
	result := filter.Apply(current.Products, c)
	metrics.FilterEvaluations.WithLabelValues("storefront").Inc()
	return result
}
