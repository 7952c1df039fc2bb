// Minimal usage: synchronous flushing, console mirror, txt format.
package main

import (
	"fmt"
	"os"

	"github.com/solelog/solelog"
)

func main() {
	engine, err := solelog.NewBuilder().
		Directory("./logs").
		Name("simple").
		Format("txt").
		ConsoleColor(true).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create engine: %v\n", err)
		os.Exit(1)
	}
	defer engine.Close()

	engine.Debug("starting up")
	engine.Info("hello from solelog")
	engine.Warningf("disk usage at %d%%", 85)
	engine.Error("something recoverable went wrong")
	engine.Critical("something unrecoverable went wrong")

	fmt.Println("active file:", engine.Path())
}
