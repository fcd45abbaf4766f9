package main

import (
	"os"

	"github.com/nutek/nutekcode/internal/cli"
)

func main() {
	code, _ := cli.Run(os.Args, nil)
	os.Exit(code)
}
