package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/m-mizutani/repogw/pkg/cli"
	"github.com/m-mizutani/repogw/pkg/utils/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logging.Default().Debug("no .env file found, using process environment")
	}

	if err := cli.New().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
