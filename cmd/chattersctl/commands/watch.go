package commands

import (
	"errors"
	"fmt"
	"io"
	"time"

	chattersv1 "github.com/matheus3301/chatters/gen/chatters/v1"
	"github.com/matheus3301/chatters/internal/api"
	"github.com/matheus3301/chatters/internal/chat"
	"github.com/matheus3301/chatters/internal/store"
	"github.com/spf13/cobra"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

func watchCmd() *cobra.Command {
	var backendID string
	var buffer int
	cmd := &cobra.Command{
		Use:     "watch",
		Short:   "Stream change notifications until interrupted",
		Args:    cobra.NoArgs,
		PreRunE: connect,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stream, err := conn.WatchChanges(cmd.Context(), chat.BackendID(backendID), buffer)
			if err != nil {
				return err
			}
			for {
				evt, err := stream.Recv()
				if errors.Is(err, io.EOF) || grpcstatus.Code(err) == codes.Canceled {
					return nil
				}
				if err != nil {
					return err
				}
				if jsonOut {
					outputJSON(evt)
					continue
				}
				printChange(evt)
			}
		},
	}
	cmd.Flags().StringVar(&backendID, "backend", "", "only watch this backend")
	cmd.Flags().IntVar(&buffer, "buffer", 0, "notifications buffered per conversation before coalescing")
	return cmd
}

func printChange(evt *chattersv1.ChangeEvent) {
	c := api.ChangeFromProto(evt)
	ts := time.UnixMilli(evt.OccurredAtUnixMs).Local().Format("15:04:05")
	switch c.Kind {
	case store.BackendChanged:
		fmt.Printf("%s %-14s %s %s\n", ts, c.Kind, c.Backend, c.State)
	case store.MessageAdded, store.MessageEdited, store.DeliveryChanged:
		fmt.Printf("%s %-14s %s %s\n", ts, c.Kind, c.Conversation, c.MessageID)
	case store.ParticipantChanged:
		fmt.Printf("%s %-14s %s %s\n", ts, c.Kind, c.Conversation, c.Participant)
	default:
		fmt.Printf("%s %-14s %s\n", ts, c.Kind, c.Conversation)
	}
}
