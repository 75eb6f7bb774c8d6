package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func reactCmd() *cobra.Command {
	var remove bool
	cmd := &cobra.Command{
		Use:     "react <conversation> <message> [emoji]",
		Short:   "React to a message, replacing any earlier reaction",
		Args:    cobra.RangeArgs(2, 3),
		PreRunE: connect,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseConversation(args[0])
			if err != nil {
				return err
			}
			emoji := ""
			if len(args) == 3 {
				emoji = args[2]
			}
			if emoji == "" && !remove {
				return fmt.Errorf("give an emoji or --remove")
			}
			ctx, cancel := requestContext(cmd)
			defer cancel()
			msg, err := conn.React(ctx, id, args[1], emoji)
			if err != nil {
				return err
			}
			if jsonOut {
				outputJSON(msg)
				return nil
			}
			printMessage(msg)
			return nil
		},
	}
	cmd.Flags().BoolVar(&remove, "remove", false, "remove this account's reaction")
	return cmd
}

func editCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "edit <conversation> <message> <text...>",
		Short:   "Replace the text of a message you sent",
		Args:    cobra.MinimumNArgs(3),
		PreRunE: connect,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseConversation(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd)
			defer cancel()
			msg, err := conn.EditMessage(ctx, id, args[1], strings.Join(args[2:], " "))
			if err != nil {
				return err
			}
			if jsonOut {
				outputJSON(msg)
				return nil
			}
			printMessage(msg)
			return nil
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <conversation> <message>",
		Aliases: []string{"rm"},
		Short:   "Delete a message you sent for everyone",
		Args:    cobra.ExactArgs(2),
		PreRunE: connect,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseConversation(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd)
			defer cancel()
			if err := conn.DeleteMessage(ctx, id, args[1]); err != nil {
				return err
			}
			fmt.Println("deleted")
			return nil
		},
	}
}

func forwardCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "forward <conversation> <message> <to-conversation>",
		Short:   "Forward a message, possibly to another backend",
		Args:    cobra.ExactArgs(3),
		PreRunE: connect,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseConversation(args[0])
			if err != nil {
				return err
			}
			to, err := parseConversation(args[2])
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd)
			defer cancel()
			msg, err := conn.ForwardMessage(ctx, from, args[1], to)
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
}
