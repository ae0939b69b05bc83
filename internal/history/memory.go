package history

import "sync"

// MemoryBackend keeps run history in memory. It backs tests and runs where
// persistence is disabled but the runner still wants a backend.
type MemoryBackend struct {
	mu      sync.Mutex
	Runs    []*Run
	Results []*FileResult
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) BeginRun(run *Run) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Runs = append(b.Runs, run)
	return nil
}

func (b *MemoryBackend) RecordFile(res *FileResult) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Results = append(b.Results, res)
	return nil
}

func (b *MemoryBackend) FinishRun(run *Run) error {
	return nil
}

func (b *MemoryBackend) Close() error {
	return nil
}
