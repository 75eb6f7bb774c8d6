package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/matheus3301/chatters/internal/api"
	"github.com/matheus3301/chatters/internal/chat"
	"github.com/matheus3301/chatters/internal/lock"
	"github.com/matheus3301/chatters/internal/profile"
	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   "Show daemon and backend status",
		Args:    cobra.NoArgs,
		PreRunE: connect,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := requestContext(cmd)
			defer cancel()
			resp, err := conn.Status(ctx)
			if err != nil {
				return err
			}
			if jsonOut {
				outputJSON(resp)
				return nil
			}
			fmt.Printf("Profile: %s\n", resp.Profile)
			fmt.Printf("Uptime:  %s\n", (time.Duration(resp.UptimeMs) * time.Millisecond).Round(time.Second))
			for _, b := range resp.Backends {
				since := time.UnixMilli(b.SinceUnixMs).Local().Format(time.Kitchen)
				fmt.Printf("  %-16s %-10s %-24s since %s", b.Id, b.Kind, api.StateFromProto(b.State), since)
				if b.PendingSends > 0 {
					fmt.Printf("  (%d sending)", b.PendingSends)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func reconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "reconnect <backend>",
		Short:   "Drop a backend's session and connect again now",
		Args:    cobra.ExactArgs(1),
		PreRunE: connect,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := requestContext(cmd)
			defer cancel()
			if err := conn.Reconnect(ctx, chat.BackendID(args[0])); err != nil {
				return err
			}
			fmt.Println("reconnecting")
			return nil
		},
	}
}

type profileInfo struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Running bool   `json:"running"`
	PID     int    `json:"pid,omitempty"`
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "logout <backend>",
		Short:   "Unlink a device-linked backend",
		Args:    cobra.ExactArgs(1),
		PreRunE: connect,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := requestContext(cmd)
			defer cancel()
			if err := conn.Logout(ctx, chat.BackendID(args[0])); err != nil {
				return err
			}
			fmt.Println("logged out; run link to pair again")
			return nil
		},
	}
}

func profilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List known profiles",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			entries, err := os.ReadDir(filepath.Join(profile.BaseDir(), "profiles"))
			if err != nil && !os.IsNotExist(err) {
				return err
			}
			var out []profileInfo
			for _, e := range entries {
				if !e.IsDir() {
					continue
				}
				p := profileInfo{Name: e.Name(), Path: profile.Dir(e.Name())}
				if info, err := lock.Inspect(p.Path); err == nil {
					p.Running, p.PID = true, info.PID
				}
				out = append(out, p)
			}
			if jsonOut {
				outputJSON(out)
				return nil
			}
			if len(out) == 0 {
				fmt.Println("No profiles found.")
				return nil
			}
			for _, p := range out {
				state := "stopped"
				if p.Running {
					state = fmt.Sprintf("running, pid %d", p.PID)
				}
				fmt.Printf("%-20s %s (%s)\n", p.Name, p.Path, state)
			}
			return nil
		},
	}
}
