package main

import "github.com/ideamans/hellogate/cmd/hellogate/cmd"

func main() {
	cmd.Execute()
}
