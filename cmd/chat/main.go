// Command chat is a terminal loop over the chatbot rule table, used when
// editing reply copy to check which rule a given message hits.
package main

import (
	"bufio"
	"fmt"
	"os"

	"hometownheating/internal/chatbot"
)

func main() {
	fmt.Println("Hometown Heating assistant. Type a message, Ctrl-D to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		fmt.Println(chatbot.Respond(scanner.Text()))
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read error: %v\n", err)
		os.Exit(1)
	}
}
