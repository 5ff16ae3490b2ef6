package main

import (
	"os"

	"github.com/junyong1111/cs-slack-bot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
