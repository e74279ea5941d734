// cmd/catalog/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/eventrix/eventrix-backend/internal/config"
	"github.com/eventrix/eventrix-backend/internal/facet"
	"github.com/eventrix/eventrix-backend/internal/filter"
	"github.com/eventrix/eventrix-backend/internal/models"
	"github.com/eventrix/eventrix-backend/internal/storefront"
)

// multiFlag collects a flag that may be repeated.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code: 2 for usage
// errors, 1 for runtime failures.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Error("Failed to load configuration")
		return 1
	}

	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		filters  multiFlag
		types    multiFlag
		places   multiFlag
		apiURL   = fs.String("api", cfg.Storefront.APIBaseURL, "catalog API base URL")
		category = fs.String("category", "", "category id (required)")
		search   = fs.String("search", "", "free-text search")
		price    = fs.String("price", "", "price range as min:max")
		asJSON   = fs.Bool("json", false, "print products as JSON")
		controls = fs.Bool("controls", false, "print the sidebar controls")
		relax    = fs.Bool("relax", false, "clear every filter when nothing matches")
		verbose  = fs.Bool("v", false, "debug logging")
	)
	fs.Var(&filters, "filter", "property filter key=value (repeatable)")
	fs.Var(&types, "type", "category type (repeatable)")
	fs.Var(&places, "location", "location (repeatable)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if *category == "" {
		fmt.Fprintln(stderr, "catalog: -category is required")
		fs.Usage()
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logrus.WithField("component", "catalog")
	client := storefront.NewClient(*apiURL, cfg.Storefront.Timeout)
	loader := storefront.NewLoader(client, cfg.Storefront.ReviewConcurrency, log)

	listing, err := loader.Load(ctx, *category)
	if err != nil {
		log.WithError(err).Error("Failed to load category")
		return 1
	}

	sidebar := facet.New(listing.MinPrice, listing.MaxPrice, func(c filter.Criteria) {
		log.WithField("facets", c.ActiveFacets()).Debug("Criteria changed")
	})
	defer sidebar.Close()

	if err := applyFlags(sidebar, filters, types, places, *search, *price); err != nil {
		fmt.Fprintln(stderr, "catalog:", err)
		return 2
	}

	products := loader.Filter(sidebar.Criteria())
	if len(products) == 0 && *relax && !sidebar.Criteria().IsEmpty() {
		sidebar.Reset()
		fmt.Fprintln(stderr, "catalog: no products matched, showing every product")
		products = loader.Filter(sidebar.Criteria())
	}

	if *controls && listing.Sidebar != nil {
		printControls(stdout, sidebar.Controls(*listing.Sidebar))
	}
	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(products); err != nil {
			log.WithError(err).Error("Failed to encode products")
			return 1
		}
		return 0
	}
	printProducts(stdout, listing, products)
	return 0
}

func applyFlags(s *facet.Sidebar, filters, types, places []string, search, price string) error {
	for _, f := range filters {
		key, value, ok := strings.Cut(f, "=")
		if !ok || key == "" {
			return fmt.Errorf("invalid -filter %q, want key=value", f)
		}
		s.Toggle(key, value)
	}
	for _, t := range types {
		s.Toggle(filter.KeyCategoryType, t)
	}
	for _, p := range places {
		s.Toggle(filter.KeyLocation, p)
	}
	if search != "" {
		s.SetSearch(search)
	}
	if price != "" {
		low, high, err := parsePrice(price)
		if err != nil {
			return err
		}
		s.SetPrice(facet.MinHandle, low)
		s.SetPrice(facet.MaxHandle, high)
	}
	return nil
}

func parsePrice(v string) (float64, float64, error) {
	lowStr, highStr, ok := strings.Cut(v, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid -price %q, want min:max", v)
	}
	low, err := strconv.ParseFloat(strings.TrimSpace(lowStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid -price minimum: %w", err)
	}
	high, err := strconv.ParseFloat(strings.TrimSpace(highStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid -price maximum: %w", err)
	}
	return low, high, nil
}

func printControls(w io.Writer, groups []facet.Group) {
	for _, g := range groups {
		fmt.Fprintf(w, "%s (%s)\n", g.Label, g.Widget)
		for _, o := range g.Options {
			mark := " "
			if o.Selected {
				mark = "x"
			}
			fmt.Fprintf(w, "  [%s] %s\n", mark, o.Value)
		}
	}
	fmt.Fprintln(w)
}

func printProducts(out io.Writer, listing *storefront.Listing, products []models.ListedProduct) {
	fmt.Fprintf(out, "%s: %d of %d products (price %.0f - %.0f)\n\n",
		listing.CategoryName, len(products), len(listing.Products), listing.MinPrice, listing.MaxPrice)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPRICE\tRATING\tREVIEWS\tLOCATION")
	for _, p := range products {
		location := ""
		if p.Location != nil {
			location = p.Location.Address
		}
		fmt.Fprintf(w, "%s\t%.2f\t%.1f\t%d\t%s\n", p.Name, p.SellingPrice, p.AverageRating, p.TotalReviews, location)
	}
	w.Flush()
}
