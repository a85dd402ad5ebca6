// Command allgreens prints the Pearson correlation matrix of the All Greens
// franchise data and ranks every variable by r² against the reference.
package main

import (
	"os"

	"github.com/YuminosukeSato/allgreens/pkg/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.GetLogger().Error("allgreens failed", err)
		os.Exit(1)
	}
}
