package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/matheus3301/chatters/internal/api"
	"github.com/matheus3301/chatters/internal/backend"
	"github.com/matheus3301/chatters/internal/chat"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"
)

func linkCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "link <backend>",
		Short:   "Link a backend as a device by scanning QR codes",
		Args:    cobra.ExactArgs(1),
		PreRunE: connect,
		RunE: func(cmd *cobra.Command, args []string) error {
			stream, err := conn.Link(cmd.Context(), chat.BackendID(args[0]))
			if err != nil {
				return err
			}
			for {
				pb, err := stream.Recv()
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}
				if jsonOut {
					outputJSON(pb)
					continue
				}
				evt := api.LinkEventFromProto(pb)
				switch evt.Type {
				case backend.LinkCode:
					fmt.Print("\033[H\033[2J")
					fmt.Println("Scan this code with your phone:")
					fmt.Println()
					fmt.Print(renderQR(evt.Code))
				case backend.LinkAuthenticated:
					fmt.Println("Linked.", evt.Message)
				case backend.LinkFailed, backend.LinkTimeout:
					return fmt.Errorf("link %s: %s", evt.Type, evt.Message)
				}
			}
		},
	}
}

// renderQR converts a string to a compact QR code using Unicode half-block
// characters. Two bitmap rows become one terminal line.
func renderQR(content string) string {
	qr, err := qrcode.New(content, qrcode.Low)
	if err != nil {
		return "  (QR generation failed: " + err.Error() + ")\n  " + content + "\n"
	}
	bitmap := qr.Bitmap()

	var sb strings.Builder
	for y := 0; y < len(bitmap); y += 2 {
		sb.WriteString("  ")
		for x := range bitmap[y] {
			top := bitmap[y][x]
			bot := y+1 < len(bitmap) && bitmap[y+1][x]
			switch {
			case top && bot:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bot:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
