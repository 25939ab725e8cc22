package main

import (
	"os"

	"github.com/giftolexia/screenterm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
