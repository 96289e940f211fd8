package main

import "presence-tracker/cmd/presence-status/cmd"

func main() {
	cmd.Execute()
}
