package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matheus3301/chatters/internal/chat"
	"github.com/spf13/cobra"
)

func sendCmd() *cobra.Command {
	var quote string
	var attach []string
	cmd := &cobra.Command{
		Use:     "send <conversation> [text...]",
		Short:   "Send a message; reads stdin when neither text nor files are given",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: connect,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseConversation(args[0])
			if err != nil {
				return err
			}
			text := strings.Join(args[1:], " ")
			if len(args) == 1 && len(attach) == 0 {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return err
				}
				text = strings.TrimRight(string(data), "\n")
			}
			body := chat.Body{Text: text}
			for _, path := range attach {
				a, err := chat.ReadAttachment(path)
				if err != nil {
					return err
				}
				body.Attachments = append(body.Attachments, a)
			}
			if quote != "" {
				body.Quote = &chat.Quote{MessageID: quote}
			}

			ctx, cancel := requestContext(cmd)
			defer cancel()
			msg, err := conn.SendMessage(ctx, id, body)
			if err != nil {
				return err
			}
			if jsonOut {
				outputJSON(msg)
				return nil
			}
			fmt.Printf("%s %s\n", msg.ID, msg.State)
			return nil
		},
	}
	cmd.Flags().StringVar(&quote, "reply-to", "", "id of the message to reply to")
	cmd.Flags().StringArrayVar(&attach, "attach", nil, "file to send inline; repeatable")
	return cmd
}

func readCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "read <conversation>",
		Short:   "Mark a conversation as read",
		Args:    cobra.ExactArgs(1),
		PreRunE: connect,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseConversation(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd)
			defer cancel()
			return conn.MarkRead(ctx, id)
		},
	}
}
