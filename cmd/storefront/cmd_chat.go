// cmd/storefront/cmd_chat.go
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/your-org/storefront-client/internal/infrastructure/api"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Ask the store assistant about products, shipping and payment",
	Long: `Talk to the store assistant. With a message argument the reply is
printed and the command exits; without one an interactive conversation
starts, keeping earlier turns as context.`,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		reply, err := shop.client.Chat(cmd.Context(), strings.Join(args, " "), nil)
		if err != nil {
			return err
		}
		fmt.Println(reply)
		return nil
	}

	fmt.Println(`Ask away; type "exit" to leave.`)
	var history []api.ChatMessage
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		reply, err := shop.client.Chat(cmd.Context(), line, history)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		fmt.Println(reply)

		history = append(history,
			api.ChatMessage{Role: api.ChatRoleUser, Content: line},
			api.ChatMessage{Role: api.ChatRoleAssistant, Content: reply},
		)
	}
}
