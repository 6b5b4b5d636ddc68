package main

import (
	"os"

	"github.com/devraulu/urlenc/pkg/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}
