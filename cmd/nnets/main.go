// Package main provides the nnets command-line tool.
package main

import (
	"fmt"
	"os"
	"time"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("nnets %s\n", version)
	case "xor":
		runXor(os.Args[2:], os.Stdout)
	case "train":
		runTrain(os.Args[2:], os.Stdout)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("nnets - feed-forward neural networks")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  xor        Evaluate (or train) the XOR network")
	fmt.Println("  train      Train a classifier on vector/label CSV files")
	fmt.Println("")
	fmt.Println("Run 'nnets <command> -h' for command flags.")
}

func timeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}
