package main

import (
	"context"
	"sync"
)

// convertAll fans the inputs out over a fixed number of workers.
// Each conversion spawns its own LibreOffice process, so workers gates
// concurrent soffice instances, not goroutine count. Results come back
// in input order.
func convertAll(ctx context.Context, conv Converter, inputs []string, opts batchOptions) []ConversionResult {
	results := make([]ConversionResult, len(inputs))

	workers := opts.workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(inputs) {
		workers = len(inputs)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = convertOne(ctx, conv, inputs[i], opts)
			}
		}()
	}

	abort := func(from int) []ConversionResult {
		// Mark everything not yet dispatched as canceled.
		for j := from; j < len(inputs); j++ {
			results[j] = ConversionResult{InputPath: inputs[j], Err: ctx.Err()}
		}
		close(jobs)
		wg.Wait()
		return results
	}

	for i := range inputs {
		if ctx.Err() != nil {
			return abort(i)
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			return abort(i)
		}
	}

	close(jobs)
	wg.Wait()
	return results
}
