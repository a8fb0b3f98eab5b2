package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	chatPromptStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#06B6D4"))
	chatReplyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6E3A1"))
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat about the indexed API documentation",
	Long: `Starts an interactive conversation grounded in the indexed API
documentation. Each question retrieves relevant documentation snippets and
passes them to the configured language model as context.

Type "exit" or "quit" to leave, "reset" to start a fresh conversation.`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	if chatService == nil {
		return errors.New("chat service not configured: set an LLM provider in the settings file")
	}

	ctx := context.Background()

	cmd.Printf("API documentation chat (session %s)\n", chatService.SessionID())
	cmd.Println(`Type "exit" to leave, "reset" to start over.`)
	cmd.Println()

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		cmd.Print(chatPromptStyle.Render("you> ") + " ")

		if !scanner.Scan() {
			cmd.Println()
			return scanner.Err()
		}

		message := strings.TrimSpace(scanner.Text())
		switch message {
		case "":
			continue
		case "exit", "quit":
			cmd.Println("Bye.")
			return nil
		case "reset":
			chatService.Reset()
			cmd.Printf("Conversation reset (session %s).\n", chatService.SessionID())
			continue
		}

		reply, err := chatService.Reply(ctx, message)
		if err != nil {
			// Invalid input only; backend failures come back as reply text.
			cmd.Printf("Error: %v\n", err)
			continue
		}

		cmd.Println(chatReplyStyle.Render(reply))
		cmd.Println()
	}
}
