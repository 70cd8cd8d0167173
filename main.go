package main

import "github.com/KaramelBytes/wealthloom-cli/cmd"

func main() {
	cmd.Execute()
}
