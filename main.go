package main

import "github.com/theirongolddev/fitdash/cmd"

func main() {
	cmd.Execute()
}
