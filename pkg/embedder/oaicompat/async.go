package oaicompat

import "context"

// NewResult is delivered by NewAsync.
type NewResult struct {
	Adapter *Adapter
	Error   error
}

// NewAsync runs New in a separate goroutine.
//
// The returned channel receives exactly one result and is then closed. Either
// Adapter is fully initialized or Error is set, never both.
func NewAsync(ctx context.Context, cfg *Config, opts ...Option) <-chan *NewResult {
	resultChan := make(chan *NewResult, 1)

	go func() {
		adapter, err := New(ctx, cfg, opts...)
		resultChan <- &NewResult{
			Adapter: adapter,
			Error:   err,
		}
		close(resultChan)
	}()

	return resultChan
}
