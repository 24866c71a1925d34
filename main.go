// Package main is the entry point for the assist binary.
package main

import "github.com/thingvallatech/community-assist/cmd"

func main() {
	cmd.Execute()
}
