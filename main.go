// Package main is the entry point for the ctxport CLI.
package main

import "ctxport.dev/pkg/ctxport/cmd"

func main() {
	cmd.Execute()
}
