package cli

import (
	"context"

	cachememory "github.com/ilmify/ilmify-cli/internal/adapters/driven/cache/memory"
	cachesqlite "github.com/ilmify/ilmify-cli/internal/adapters/driven/cache/sqlite"
	catalogfile "github.com/ilmify/ilmify-cli/internal/adapters/driven/catalog/file"
	configfile "github.com/ilmify/ilmify-cli/internal/adapters/driven/config/file"
	"github.com/ilmify/ilmify-cli/internal/adapters/driven/ranker/httpapi"
	"github.com/ilmify/ilmify-cli/internal/core/ports/driven"
	"github.com/ilmify/ilmify-cli/internal/core/services"
	"github.com/ilmify/ilmify-cli/internal/extractors"
	extractorpdf "github.com/ilmify/ilmify-cli/internal/extractors/pdf"
	"github.com/ilmify/ilmify-cli/internal/extractors/plaintext"
	"github.com/ilmify/ilmify-cli/internal/logger"
)

// wireServices assembles adapters and core services from settings.
func wireServices(ctx context.Context, settings *configfile.Settings) error {
	catalog := catalogfile.NewCatalog(settings.Catalog.Path)

	registry := extractors.NewRegistry(
		extractorpdf.New(),
		plaintext.New(),
	)

	var cache driven.IndexCache
	if settings.Cache.Backend == "memory" {
		cache = cachememory.NewCache()
	} else {
		store, err := cachesqlite.NewCache(settings.Cache.Dir)
		if err != nil {
			logger.Warn("Index cache unavailable, continuing without: %v", err)
		} else {
			cache = store
		}
	}

	builder := services.NewIndexBuilder(catalog, registry, cache, settings.BuildOptions())

	if settings.Catalog.Watch {
		if err := catalog.Watch(ctx, builder.Invalidate); err != nil {
			logger.Warn("Catalog watch unavailable: %v", err)
		}
	}

	var remote driven.RemoteRanker
	if settings.Remote.URL != "" {
		var opts []httpapi.Option
		if settings.Remote.RatePerSecond > 0 {
			opts = append(opts, httpapi.WithRate(settings.Remote.RatePerSecond))
		}
		remote = httpapi.NewClient(settings.Remote.URL, opts...)
	}

	search := services.NewSearchService(builder, remote, settings.ScoringPolicy())

	indexOrch = builder
	searchService = search
	askService = services.NewAnswerService(search, settings.SynthesisPolicy())
	return nil
}
