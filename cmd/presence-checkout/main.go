package main

import "presence-tracker/cmd/presence-checkout/cmd"

func main() {
	cmd.Execute()
}
