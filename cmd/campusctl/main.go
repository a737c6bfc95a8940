// Package main provides the campusctl binary entry point.
package main

import "github.com/anirudh/campusconnect/internal/cli"

func main() {
	cli.Execute()
}
