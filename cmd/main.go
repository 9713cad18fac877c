package main

import (
	"log"

	"github.com/dbckit/dbcdata/app/check"
	"github.com/dbckit/dbcdata/app/convert"
	"github.com/dbckit/dbcdata/app/generate"
	"github.com/dbckit/dbcdata/app/proto"
	"github.com/dbckit/dbcdata/pkg/cli"
)

func main() {
	c := cli.NewCLI(
		"dbcdata",
		"Generate Go codecs from DBC schemas and convert CAN captures to MCAP.",
	)

	c.AddCommands(
		generate.NewCommand(),
		convert.NewCommand(),
		proto.NewCommand(),
		check.NewCommand(),
	)

	if err := c.Run(); err != nil {
		log.Fatal(err)
	}
}
