// A fasthttp server whose internal logging flows through a solelog engine
// via the compat adapter.
package main

import (
	"fmt"
	"os"

	"github.com/valyala/fasthttp"

	"github.com/solelog/solelog"
	"github.com/solelog/solelog/compat"
)

func main() {
	engine, err := solelog.NewBuilder().
		Directory("./logs").
		Name("serve").
		Format("json").
		MaxSizeMB(16).
		FlushIntervalMs(100).
		EnableConsole(false).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create engine: %v\n", err)
		os.Exit(1)
	}
	defer engine.Close()

	adapter, err := compat.NewBuilder().WithEngine(engine).BuildFastHTTP()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build adapter: %v\n", err)
		os.Exit(1)
	}

	server := &fasthttp.Server{
		Handler: func(ctx *fasthttp.RequestCtx) {
			engine.Infof("request %s %s", ctx.Method(), ctx.Path())
			ctx.WriteString("ok\n")
		},
		Logger: adapter,
	}

	engine.Info("listening on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		engine.Criticalf("server stopped: %v", err)
		os.Exit(1)
	}
}
