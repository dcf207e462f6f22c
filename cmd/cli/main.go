// Command interrolog parses and formats interrogation transcript logs.
package main

import (
	"os"

	"github.com/interrolog/interrolog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
