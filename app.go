package main

import "github.com/sim-hash/gitpick/cmd"

func main() {
	cmd.Run()
}
