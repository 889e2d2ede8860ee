package main

import (
	"os"

	"github.com/sam-maryland/draft-lottery-server/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Stdout, os.Stderr, os.Args[1:]))
}
