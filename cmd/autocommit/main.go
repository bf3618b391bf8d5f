package main

import (
	"os"

	"github.com/dshills/autocommit/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
