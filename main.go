package main

import "github.com/akwaba-bebe/akwaba-cli/cmd"

func main() {
	cmd.Execute()
}
