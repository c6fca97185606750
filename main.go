package main

import "progress-tracker/cmd"

func main() {
	cmd.Execute()
}
