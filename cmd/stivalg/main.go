package main

import "github.com/arl/stivalg/cmd/stivalg/cmd"

func main() {
	cmd.Execute()
}
