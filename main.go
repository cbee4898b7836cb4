// Package main is the entry point for the modxml CLI.
package main

import "modxml.dev/pkg/modxml/cmd"

func main() {
	cmd.Execute()
}
