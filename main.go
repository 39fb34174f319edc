package main

import "github.com/xvierd/tock-cli/cmd"

func main() {
	cmd.Execute()
}
