package main

import "github.com/oshokin/syspower/cmd/syspower/cmd"

func main() {
	cmd.Execute()
}
