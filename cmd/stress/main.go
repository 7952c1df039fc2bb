// Concurrency and rotation stress: many goroutines, small size limit,
// periodic flushing. Prints counters on exit.
package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/solelog/solelog"
)

const (
	workers           = 16
	messagesPerWorker = 5000
)

func main() {
	engine, err := solelog.NewBuilder().
		Directory("./logs").
		Name("stress").
		Format("json").
		MaxSizeMB(1).
		FlushIntervalMs(50).
		EnableConsole(false).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create engine: %v\n", err)
		os.Exit(1)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < messagesPerWorker; j++ {
				_ = engine.Infof("worker %d message %d", worker, j)
			}
		}(i)
	}
	wg.Wait()

	stats := engine.Stats()
	if err := engine.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close failed: %v\n", err)
	}

	fmt.Printf("records=%d bytes=%d rotations=%d archives=%d\n",
		stats.Records, stats.BytesWritten, stats.Rotations, len(engine.Archives()))
}
