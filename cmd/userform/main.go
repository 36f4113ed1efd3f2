package main

import (
	"github.com/goliatone/go-userform/cmd/userform/cli"
)

func main() {
	cli.InitAndExecute()
}
