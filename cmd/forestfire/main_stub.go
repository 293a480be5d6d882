//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of forest-ca requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/forestfire` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a terminal frontend without the tag, use ./cmd/forestfire-tui.")
	os.Exit(2)
}
