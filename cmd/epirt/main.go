// cmd/epirt/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"epirt/internal/rtapp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := rtapp.RunContext(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	stop()
	os.Exit(code)
}
