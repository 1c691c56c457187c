package main

import (
	"ledgerload/cmd"
)

func main() {
	cmd.ExitOnError(cmd.Execute())
}
