package main

import "github.com/KaramelBytes/missflux/cmd"

func main() {
	cmd.Execute()
}
