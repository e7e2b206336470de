package main

import "github.com/pvannes/spotify-history-tools/cmd"

func main() {
	cmd.Execute()
}
