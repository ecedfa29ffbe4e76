package stencil

import (
	"errors"
	"runtime"
	"sync"
)

// DitherAll dithers every pixmap in pms, distributing them across up to
// workers goroutines. If workers is 0 or negative, GOMAXPROCS is used.
//
// Each pixmap is still processed by a single sequential scan; only whole
// images run in parallel, which is always valid because invocations share
// no mutable state. All pixmaps are attempted even after a failure; the
// returned error joins every validation failure encountered.
func (e *Engine) DitherAll(pms []*Pixmap, workers int) error {
	if len(pms) == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(pms) {
		workers = len(pms)
	}

	jobs := make(chan *Pixmap)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for pm := range jobs {
				if err := e.Dither(pm); err != nil {
					mu.Lock()
					errs = append(errs, err)
					mu.Unlock()
					Logger().Warn("stencil: batch item failed", "error", err)
				}
			}
		}()
	}

	for _, pm := range pms {
		jobs <- pm
	}
	close(jobs)
	wg.Wait()

	return errors.Join(errs...)
}
