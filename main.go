package main

import "github.com/mouse-blink/transpyle/cmd"

func main() {
	cmd.Execute()
}
