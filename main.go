package main

import "github.com/briis/secspy/cmd"

func main() {
	cmd.Execute()
}
