package main

import (
	"github.com/mwhitfield/clubstore/internal/cli"
)

func main() {
	cli.Execute()
}
