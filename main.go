// Package main is the entry point for the myspec CLI.
package main

import "myspec.dev/pkg/myspec/cmd"

func main() {
	cmd.Execute()
}
