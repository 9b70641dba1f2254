package main

import (
	"os"

	"github.com/scan-io-git/commentcheck/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
