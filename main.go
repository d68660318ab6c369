package main

import "github.com/kubev2v/hello-server/cmd"

func main() {
	cmd.Execute()
}
