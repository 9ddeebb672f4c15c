// Package main is the entry point for the grademill CLI.
package main

import "grademill.dev/pkg/grademill/cmd"

func main() {
	cmd.Execute()
}
