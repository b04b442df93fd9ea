//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of golife requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/golife` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a windowless run, use ./cmd/golife-sim.")
	os.Exit(2)
}
