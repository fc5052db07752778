package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func main() {
	if err := buildApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildApp() *cli.App {
	app := cli.NewApp()
	app.Name = "tasker"
	app.Usage = "bounded process registry with DEFAULT, FIFO and PRIORITY admission"
	app.Version = "0.1.0"
	app.Commands = []cli.Command{
		Run(),
		Validate(),
	}
	return app
}
