package main

import (
	"fmt"
	"io"
	"os"
)

var _main = mainCmd{
	Stdout: os.Stdout,
	Stderr: os.Stderr,
}

func main() {
	if err := run(&_main, os.Args[1:]); err != nil {
		fmt.Fprintln(_main.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *mainCmd, args []string) error {
	root := cmd.newRootCommand()
	root.SetArgs(args)
	return root.Execute()
}

type mainCmd struct {
	Stdout io.Writer
	Stderr io.Writer
}

const _name = "hufftree"
