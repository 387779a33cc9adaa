// cmd/main.go
package main

import cmd "github.com/mwiater/scorecurve/cmd/scorecurve"

// main starts the scorecurve CLI by delegating to the cobra root command
// defined in the scorecurve package.
func main() {
	cmd.Execute()
}
