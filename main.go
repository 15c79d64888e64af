package main

import "github.com/jobtrackr/jobtrackr/cmd"

func main() {
	cmd.Execute()
}
