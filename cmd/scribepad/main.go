package main

import (
	"github.com/devbush/scribepad/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
