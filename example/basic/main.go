// Package main demonstrates basic usage of the command prompt.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/nao1215/cmdprompt"
)

func main() {
	t, err := cmdprompt.OpenTerminal()
	if err != nil {
		log.Fatal(err)
	}
	defer t.Close()

	fmt.Println("Command Prompt Example")
	fmt.Println("Try: q, w notes.txt, o main.go, f needle, 42, bn")
	fmt.Println("Backspace on an empty prompt cancels, q exits")

	for {
		// A fresh prompt per command, like entering ':' in vi
		p := cmdprompt.New(cmdprompt.CommandMode,
			cmdprompt.WithOutput(t.Output()),
			cmdprompt.WithColorScheme(cmdprompt.ThemeDefault),
		)

		cmd, err := p.Run(t, 0)
		fmt.Print("\r\n")
		if err != nil {
			if errors.Is(err, cmdprompt.ErrEOF) {
				fmt.Println("Goodbye!")
				return
			}
			fmt.Printf("Error: %v\r\n", err)
			continue
		}

		switch cmd := cmd.(type) {
		case cmdprompt.Quit:
			fmt.Println("Goodbye!")
			return
		case cmdprompt.Cancel:
			fmt.Print("(cancelled)\r\n")
		default:
			fmt.Printf("Command: %s\r\n", cmd)
		}
	}
}
