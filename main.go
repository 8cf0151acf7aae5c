package main

import "config-manager/cmd"

func main() {
	cmd.Execute()
}
