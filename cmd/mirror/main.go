package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"

	"github.com/starshine-sys/mirror/cmd/mirror/bot"
	"github.com/starshine-sys/mirror/common"
	"github.com/starshine-sys/mirror/common/log"
)

var app = &cli.App{
	Name:    "Mirror",
	Usage:   "Gateway event ingester and state mirror",
	Version: common.Version(),

	Commands: []*cli.Command{
		bot.Command,
	},
}

func main() {
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
