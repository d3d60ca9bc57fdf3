package discover

import (
	"context"
	"runtime"
	"sync"

	"github.com/ljwgithub/svtags/internal/diag"
	"github.com/ljwgithub/svtags/internal/scanner"
	"github.com/ljwgithub/svtags/pkg/keyword"
	"github.com/ljwgithub/svtags/pkg/tag"
)

// Scan reads and scans every file in files through a bounded worker pool,
// emitting every tag into sink. jobs bounds concurrency; zero or negative
// selects runtime.GOMAXPROCS(0). A per-file scan failure (an internal
// assertion recovered by scanner.ScanFile) is collected and returned
// alongside any successfully scanned files rather than aborting the batch,
// matching spec.md §7's "report one bad file without aborting others".
func Scan(ctx context.Context, d *Discoverer, files []File, sink tag.Sink, registry *keyword.Registry, policy scanner.KindPolicy, logger diag.Logger, cache *Cache, jobs int) []error {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	sem := make(chan struct{}, jobs)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errs []error

	for _, f := range files {
		f := f
		select {
		case <-ctx.Done():
			mu.Lock()
			errs = append(errs, ctx.Err())
			mu.Unlock()
			continue
		default:
		}

		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			if err := scanOne(ctx, d, f, sink, registry, policy, logger, cache); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return errs
}

func scanOne(ctx context.Context, d *Discoverer, f File, sink tag.Sink, registry *keyword.Registry, policy scanner.KindPolicy, logger diag.Logger, cache *Cache) error {
	src, err := d.Read(ctx, f.Path)
	if err != nil {
		return err
	}

	hash, hashErr := ContentHash(src)
	if hashErr == nil && cache.Unchanged(f.Path, hash) {
		return nil
	}

	if err := scanner.ScanFile(f.Path, src, f.Lang, sink, registry, policy, logger); err != nil {
		return err
	}

	if hashErr == nil {
		cache.Remember(f.Path, hash)
	}
	return nil
}
