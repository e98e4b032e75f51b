package embedder

import (
	"context"
	"sync"
)

// DocumentsResult is delivered by EmbedDocumentsAsync.
type DocumentsResult struct {
	Vectors [][]float32
	Error   error
}

// QueryResult is delivered by EmbedQueryAsync.
type QueryResult struct {
	Vector []float32
	Error  error
}

// AsyncProvider runs Provider calls in separate goroutines.
//
// All async methods return buffered channels that receive exactly one result
// and are then closed. Wait blocks until every call started so far has
// finished.
//
// Example:
//
//	async := embedder.NewAsyncProvider(adapter)
//	resultChan := async.EmbedQueryAsync(ctx, "what is a vector space?")
//	result := <-resultChan
//	if result.Error != nil {
//	    log.Fatal(result.Error)
//	}
type AsyncProvider struct {
	Provider
	wg sync.WaitGroup
}

// NewAsyncProvider wraps p for asynchronous use.
func NewAsyncProvider(p Provider) *AsyncProvider {
	return &AsyncProvider{Provider: p}
}

// EmbedDocumentsAsync embeds documents asynchronously.
func (ap *AsyncProvider) EmbedDocumentsAsync(ctx context.Context, documents []string) <-chan *DocumentsResult {
	resultChan := make(chan *DocumentsResult, 1)
	ap.wg.Add(1)

	go func() {
		defer ap.wg.Done()
		vectors, err := ap.EmbedDocuments(ctx, documents)
		resultChan <- &DocumentsResult{
			Vectors: vectors,
			Error:   err,
		}
		close(resultChan)
	}()

	return resultChan
}

// EmbedQueryAsync embeds a query asynchronously.
func (ap *AsyncProvider) EmbedQueryAsync(ctx context.Context, query string) <-chan *QueryResult {
	resultChan := make(chan *QueryResult, 1)
	ap.wg.Add(1)

	go func() {
		defer ap.wg.Done()
		vector, err := ap.EmbedQuery(ctx, query)
		resultChan <- &QueryResult{
			Vector: vector,
			Error:  err,
		}
		close(resultChan)
	}()

	return resultChan
}

// Wait blocks until all in-flight async operations complete.
func (ap *AsyncProvider) Wait() {
	ap.wg.Wait()
}
