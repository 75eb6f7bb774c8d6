package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/matheus3301/chatters/internal/daemon"
	"github.com/matheus3301/chatters/internal/profile"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	profileFlag := flag.String("profile", "", "profile name (overrides config default)")
	verboseFlag := flag.Bool("verbose", false, "log dependency injection events")
	flag.Parse()

	name := profile.Resolve(*profileFlag)
	if err := profile.ValidateName(name); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	opts := []fx.Option{daemon.Module(daemon.Params{Profile: name})}
	if *verboseFlag {
		opts = append(opts, fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}))
	} else {
		opts = append(opts, fx.NopLogger)
	}

	app := fx.New(opts...)
	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	app.Run()
}
