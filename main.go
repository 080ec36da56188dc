package main

import "github.com/theirongolddev/calburn/cmd"

func main() {
	cmd.Execute()
}
