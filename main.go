package main

import "github.com/mriveralee/gofea/cmd"

func main() {
	cmd.Execute()
}
