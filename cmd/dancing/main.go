package main

import (
	"github.com/tefirman/dancing/internal/cli"
)

func main() {
	cli.Execute()
}
