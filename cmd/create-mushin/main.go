package main

import (
	"os"

	"github.com/mushin-app/create-mushin/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute()))
}
