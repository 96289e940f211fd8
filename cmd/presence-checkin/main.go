package main

import "presence-tracker/cmd/presence-checkin/cmd"

func main() {
	cmd.Execute()
}
