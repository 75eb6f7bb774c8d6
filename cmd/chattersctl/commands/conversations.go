package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/matheus3301/chatters/internal/chat"
	"github.com/matheus3301/chatters/internal/client"
	"github.com/spf13/cobra"
)

func conversationsCmd() *cobra.Command {
	var backendID string
	var limit, offset int
	cmd := &cobra.Command{
		Use:     "conversations",
		Aliases: []string{"ls"},
		Short:   "List conversations, most recent first",
		Args:    cobra.NoArgs,
		PreRunE: connect,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := requestContext(cmd)
			defer cancel()
			resp, err := conn.ListConversations(ctx, chat.BackendID(backendID), limit, offset)
			if err != nil {
				return err
			}
			if jsonOut {
				outputJSON(resp)
				return nil
			}
			for _, c := range resp.Conversations {
				unread := ""
				if c.Unread > 0 {
					unread = fmt.Sprintf(" [%d]", c.Unread)
				}
				fmt.Printf("%-40s %-30s %s%s\n", c.ID, c.Title(), when(c.LastActivity), unread)
			}
			if resp.HasMore {
				fmt.Printf("... more with --offset %d\n", offset+len(resp.Conversations))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&backendID, "backend", "", "only list this backend")
	cmd.Flags().IntVar(&limit, "limit", 50, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "skip this many conversations")
	return cmd
}

func messagesCmd() *cobra.Command {
	var before, after string
	var limit int
	cmd := &cobra.Command{
		Use:     "messages <conversation>",
		Short:   "Show messages of a conversation",
		Args:    cobra.ExactArgs(1),
		PreRunE: connect,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseConversation(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd)
			defer cancel()
			msgs, err := conn.ListMessages(ctx, id, client.Window{Before: before, After: after, Limit: limit})
			if err != nil {
				return err
			}
			if jsonOut {
				outputJSON(msgs)
				return nil
			}
			for _, m := range msgs {
				printMessage(m)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&before, "before", "", "only messages before this message id")
	cmd.Flags().StringVar(&after, "after", "", "only messages after this message id")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum number of messages")
	return cmd
}

func searchCmd() *cobra.Command {
	var in string
	var limit int
	cmd := &cobra.Command{
		Use:     "search <query>",
		Short:   "Full-text search over archived messages",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: connect,
		RunE: func(cmd *cobra.Command, args []string) error {
			var conv chat.ConversationID
			if in != "" {
				id, err := parseConversation(in)
				if err != nil {
					return err
				}
				conv = id
			}
			ctx, cancel := requestContext(cmd)
			defer cancel()
			hits, err := conn.SearchMessages(ctx, strings.Join(args, " "), conv, limit)
			if err != nil {
				return err
			}
			if jsonOut {
				outputJSON(hits)
				return nil
			}
			if len(hits) == 0 {
				fmt.Println("No matches.")
				return nil
			}
			for _, h := range hits {
				fmt.Printf("%s  %s  %s: %s\n", when(h.Message.Timestamp), h.Conversation, sender(h.Message), h.Snippet)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "only search this conversation")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of hits")
	return cmd
}

func printMessage(m chat.Message) {
	text := m.Body.Preview()
	switch {
	case m.Redacted:
		text = "(deleted)"
	case m.Edited:
		text += " (edited)"
	}
	if m.Body.Quote != nil {
		text = "> " + m.Body.Quote.MessageID + " " + text
	}
	fmt.Printf("%s  %-16s %s", when(m.Timestamp), sender(m), text)
	if m.FromMe {
		fmt.Printf("  [%s]", m.State)
	}
	for _, r := range m.Reactions {
		fmt.Printf(" %s", r.Emoji)
	}
	fmt.Println()
}

func sender(m chat.Message) string {
	switch {
	case m.FromMe:
		return "me"
	case m.SenderName != "":
		return m.SenderName
	}
	return m.Sender
}

func when(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	t = t.Local()
	if y, m, d := time.Now().Date(); t.Year() == y && t.Month() == m && t.Day() == d {
		return t.Format("15:04")
	}
	return t.Format("2006-01-02 15:04")
}
