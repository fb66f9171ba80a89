// Command ytlive checks whether a YouTube channel is currently
// livestreaming, from the terminal.
//
//	ytlive check-live [-json] <channel-id-or-url>
//	ytlive get-channel-id <url-or-handle>
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/jonboulle/clockwork"

	"github.com/mindvr/yt-live-monitor/internal/app"
	"github.com/mindvr/yt-live-monitor/internal/domain"
	"github.com/mindvr/yt-live-monitor/internal/platform/logging"
	"github.com/mindvr/yt-live-monitor/internal/youtube"
)

func main() {
	// Keep stdout for results; only real failures get log lines.
	logging.InitLogger("error", "text")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	client := youtube.NewClient()
	checks := app.NewCheckService(client, client, nil, clockwork.NewRealClock())
	ctx := context.Background()

	switch os.Args[1] {
	case "check-live":
		os.Exit(runCheckLive(ctx, checks, os.Args[2:]))
	case "get-channel-id":
		os.Exit(runGetChannelID(ctx, checks, os.Args[2:]))
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  ytlive check-live [-json] <channel-id-or-url>")
	fmt.Fprintln(os.Stderr, "  ytlive get-channel-id <url-or-handle>")
}

func runCheckLive(ctx context.Context, checks *app.CheckService, args []string) int {
	fs := flag.NewFlagSet("check-live", flag.ExitOnError)
	jsonOutput := fs.Bool("json", false, "output result as JSON")
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		usage()
		return 2
	}

	result := checks.Check(ctx, fs.Arg(0))

	if *jsonOutput {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println(string(out))
		if result.Error != "" {
			return 1
		}
		return 0
	}

	printResult(result)
	if result.Error != "" {
		return 1
	}
	return 0
}

func printResult(result domain.CheckResult) {
	channel := result.ChannelID
	if channel == "" {
		channel = "Unknown"
	}
	fmt.Printf("Channel ID: %s\n", channel)

	if result.Error != "" {
		fmt.Printf("Error: %s\n", result.Error)
		return
	}

	if result.IsLive {
		fmt.Println("Status: LIVE")
		if result.Title != "" {
			fmt.Printf("Title: %s\n", result.Title)
		}
		fmt.Printf("Livestream URL: %s\n", result.LivestreamURL)
	} else {
		fmt.Println("Status: NOT LIVE")
	}

	fmt.Printf("Checked at: %s\n", result.CheckedAt)
}

func runGetChannelID(ctx context.Context, checks *app.CheckService, args []string) int {
	if len(args) != 1 {
		usage()
		return 2
	}

	id, err := checks.ResolveChannelID(ctx, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("Channel ID: %s\n", id)
	return 0
}
