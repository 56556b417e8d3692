package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/agenthands/pl0/pkg/lexer"
)

func main() {
	interactive := flag.Bool("i", false, "Lex entered lines interactively")
	colorMode := flag.String("color", "auto", "Colorize output: auto, on or off")
	flag.Parse()

	color := false
	switch *colorMode {
	case "on":
		color = true
	case "off":
	default:
		color = term.IsTerminal(int(os.Stdout.Fd()))
	}

	if *interactive {
		if err := repl(color); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// 1. Load the full source: named file, or stdin when no argument.
	var src []byte
	var err error
	if flag.NArg() > 0 {
		src, err = os.ReadFile(flag.Arg(0))
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// 2. Scan and print. Lexical problems are Error tokens in the
	// output, never a failed exit.
	lexer.Scan(string(src)).Dump(os.Stdout, color)
}

func repl(color bool) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt(">> ")
		if err != nil {
			if err == io.EOF || err == liner.ErrPromptAborted {
				fmt.Println()
				return nil
			}
			return err
		}
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		// Every line is its own scan with its own symbol table.
		lexer.Scan(input).Dump(os.Stdout, color)
	}
}
