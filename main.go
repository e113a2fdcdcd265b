package main

import (
	"fmt"

	"coveragerl/experiments"
)

// main entry point to all the experiment drivers. Environment engines make
// themselves available by calling rl.Register from an init function.
func main() {
	rootCommand := experiments.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
	}
}
