package main

import "presence-tracker/cmd/presence-reset/cmd"

func main() {
	cmd.Execute()
}
