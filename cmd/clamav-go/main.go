package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ffi-clamav/clamav-go/internal/cli"
	"github.com/ffi-clamav/clamav-go/pkg/clamav"
)

func main() {
	err := cli.Execute()
	switch {
	case err == nil:
		return
	case errors.Is(err, cli.ErrInfected):
		// Same convention as clamscan: 1 means something was found.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	case errors.Is(err, clamav.ErrNotBuilt):
		fmt.Fprintf(os.Stderr, "library unavailable: %v\n", err)
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}
