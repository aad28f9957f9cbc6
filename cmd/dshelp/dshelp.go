package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cyclopcam/dsconv/pkg/dsdoc"
)

// Usage: dshelp [topic]
// With no topic, list the top level topics.
func main() {
	args := os.Args[1:]
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" {
		fmt.Printf("Show help by typing: '%v <topic>'\n\n", dsdoc.ToolHelp)
		fmt.Printf("Available topics:\n  %v\n", strings.Join(dsdoc.Default.Keys(), "\n  "))
		return
	}

	topic, err := dsdoc.Default.Lookup(args[0])
	if err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}
	fmt.Print(topic.Text())
}
