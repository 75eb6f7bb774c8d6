package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/matheus3301/chatters/internal/chat"
	"github.com/matheus3301/chatters/internal/client"
	"github.com/matheus3301/chatters/internal/profile"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

var (
	profileFlag string
	jsonOut     bool
	timeout     time.Duration

	profileName string
	conn        *client.Client
)

// Execute runs the command line.
func Execute() error {
	root := &cobra.Command{
		Use:           "chattersctl",
		Short:         "Control a running chatters daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&profileFlag, "profile", "", "profile name (overrides config default)")
	root.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "timeout for single requests")

	root.AddCommand(
		statusCmd(),
		conversationsCmd(),
		messagesCmd(),
		searchCmd(),
		sendCmd(),
		readCmd(),
		reactCmd(),
		editCmd(),
		deleteCmd(),
		forwardCmd(),
		reconnectCmd(),
		logoutCmd(),
		linkCmd(),
		watchCmd(),
		profilesCmd(),
	)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}

// connect resolves the profile and dials its daemon. Commands that talk to
// the daemon use it as their PreRunE.
func connect(cmd *cobra.Command, _ []string) error {
	profileName = profile.Resolve(profileFlag)
	if err := profile.ValidateName(profileName); err != nil {
		return err
	}
	socket := profile.SocketPath(profileName)
	if _, err := os.Stat(socket); err != nil {
		return fmt.Errorf("daemon for profile %q is not running (no socket at %s)", profileName, socket)
	}
	c, err := client.New(socket)
	if err != nil {
		return fmt.Errorf("cannot connect to daemon for profile %q: %w", profileName, err)
	}
	conn = c
	cmd.PostRunE = func(*cobra.Command, []string) error { return conn.Close() }
	return nil
}

func requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}

func parseConversation(s string) (chat.ConversationID, error) {
	id, err := chat.ParseConversationID(s)
	if err != nil {
		return chat.ConversationID{}, fmt.Errorf("%w (want backend:native)", err)
	}
	return id, nil
}

func outputJSON(v any) {
	if m, ok := v.(proto.Message); ok {
		data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(m)
		if err != nil {
			fmt.Fprintf(os.Stderr, "json encode error: %v\n", err)
			return
		}
		fmt.Println(string(data))
		return
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "json encode error: %v\n", err)
	}
}
