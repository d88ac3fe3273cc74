package main

import (
	"os"

	"github.com/w3rdev/w3r/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
