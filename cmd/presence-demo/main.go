package main

import "presence-tracker/cmd/presence-demo/cmd"

func main() {
	cmd.Execute()
}
