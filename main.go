// The main package for the fishplants executable.
package main

import (
	"github.com/jbrasil/fishplants/cmd"
)

func main() {
	cmd.Execute()
}
