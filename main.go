package main

import (
	"os"

	"github.com/quentinlc/teambalance/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
