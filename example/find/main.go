// Package main demonstrates a find prompt that is re-armed after an empty query.
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

	p := cmdprompt.New(cmdprompt.FindMode,
		cmdprompt.WithOutput(t.Output()),
		cmdprompt.WithColorScheme(cmdprompt.ThemeDark),
	)

	for {
		cmd, err := p.Run(t, 0)
		if errors.Is(err, cmdprompt.ErrExpectedArgument) {
			// Keep the prompt open until a query is typed
			continue
		}
		fmt.Print("\r\n")
		if err != nil {
			log.Fatal(err)
		}

		if find, ok := cmd.(cmdprompt.Find); ok {
			fmt.Printf("Searching for %q\n", find.Query)
		} else {
			fmt.Println("Search cancelled")
		}
		return
	}
}
