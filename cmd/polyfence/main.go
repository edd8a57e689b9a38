package main

import "github.com/arl/polyfence/cmd/polyfence/cmd"

func main() {
	cmd.Execute()
}
