package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yt-collector/internal/config"
	"github.com/yt-collector/internal/models"
	"github.com/yt-collector/internal/youtube"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "resolve":
		cmdResolve(args)
	case "stats":
		cmdStats(args)
	case "videos":
		cmdVideos(args)
	case "details":
		cmdDetails(args)
	case "channel":
		cmdChannel(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `collect - YouTube channel data collector

Usage:
  collect resolve <channel-name>           Resolve a channel name to its ID
  collect stats <channel-id> [id...]       Fetch statistics for channels
  collect videos [flags] <playlist-id>     List every video ID in a playlist
  collect details [flags] <video-id> [...] Fetch detail rows for videos
  collect channel [flags] <channel-name>   Full pipeline: resolve, stats,
                                           enumerate uploads, fetch details
  collect help                             Show this help message

Examples:
  collect resolve "MrBeast"
  collect stats UCX6OQ3DkcsbYNE6H8uQQuVA
  collect videos UUX6OQ3DkcsbYNE6H8uQQuVA
  collect details -format json dQw4w9WgXcQ,9bZkp7q19f0
  collect channel -out videos.csv "MrBeast"

The YouTube API key is read from YOUTUBE_API_KEY (a .env file works too).

For help on a specific command: collect <command> -h
`)
}

// newClient loads configuration and builds the API client shared by all
// commands. maxPages <= 0 leaves playlist walks unbounded.
func newClient(maxPages int) *youtube.Client {
	// A .env file is optional here.
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	var opts []youtube.Option
	if maxPages > 0 {
		opts = append(opts, youtube.WithPageLimit(maxPages))
	}

	client, err := youtube.NewClient(context.Background(), cfg.YouTubeAPIKey, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating client: %v\n", err)
		os.Exit(1)
	}
	return client
}

func cmdResolve(args []string) {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: collect resolve <channel-name>\n")
	}
	fs.Parse(args)

	argv := fs.Args()
	if len(argv) == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing channel-name\n")
		fs.Usage()
		os.Exit(1)
	}
	name := strings.Join(argv, " ")

	client := newClient(0)

	res := client.ResolveChannel(context.Background(), name)
	switch res.State {
	case youtube.ResolveFound:
		fmt.Printf("%s\t%s\n", res.ChannelID, res.Title)
	case youtube.ResolveNotFound:
		fmt.Fprintf(os.Stderr, "No channel found for %q\n", name)
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "Error resolving channel: %v\n", res.Err)
		os.Exit(1)
	}
}

func cmdStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	asJSON := fs.Bool("json", false, "Print the table as JSON instead of text")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: collect stats [flags] <channel-id> [id...]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	ids := gatherIDs(fs.Args())
	if len(ids) == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing channel-id\n")
		fs.Usage()
		os.Exit(1)
	}

	client := newClient(0)

	table, err := client.FetchChannelStats(context.Background(), ids)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching channel stats: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		printJSON(table)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CHANNEL ID\tNAME\tSUBSCRIBERS\tVIEWS\tVIDEOS\tUPLOADS PLAYLIST")
	for _, row := range table {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
			row.ChannelID,
			row.ChannelName,
			row.Subscribers,
			row.Views,
			row.TotalVideos,
			row.UploadsPlaylistID,
		)
	}
	w.Flush()
}

func cmdVideos(args []string) {
	fs := flag.NewFlagSet("videos", flag.ExitOnError)
	maxPages := fs.Int("max-pages", 0, "Stop with an error after this many pages (0 = walk all)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: collect videos [flags] <playlist-id>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	argv := fs.Args()
	if len(argv) == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing playlist-id\n")
		fs.Usage()
		os.Exit(1)
	}
	playlistID := argv[0]

	client := newClient(*maxPages)

	videoIDs, err := client.ListPlaylistVideoIDs(context.Background(), playlistID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing playlist videos: %v\n", err)
		os.Exit(1)
	}

	for _, id := range videoIDs {
		fmt.Println(id)
	}
	fmt.Fprintf(os.Stderr, "\nTotal: %d videos\n", len(videoIDs))
}

func cmdDetails(args []string) {
	fs := flag.NewFlagSet("details", flag.ExitOnError)
	format := fs.String("format", "csv", "Output format: csv or json")
	out := fs.String("out", "", "Write output to this file instead of stdout")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: collect details [flags] <video-id> [id...]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	ids := gatherIDs(fs.Args())
	if len(ids) == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing video-id\n")
		fs.Usage()
		os.Exit(1)
	}

	client := newClient(0)

	table, err := client.FetchVideoDetails(context.Background(), ids)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching video details: %v\n", err)
		os.Exit(1)
	}

	writeVideoTable(table, *format, *out)
}

func cmdChannel(args []string) {
	fs := flag.NewFlagSet("channel", flag.ExitOnError)
	format := fs.String("format", "csv", "Output format: csv or json")
	out := fs.String("out", "", "Write output to this file instead of stdout")
	maxPages := fs.Int("max-pages", 0, "Stop with an error after this many playlist pages (0 = walk all)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: collect channel [flags] <channel-name>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	argv := fs.Args()
	if len(argv) == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing channel-name\n")
		fs.Usage()
		os.Exit(1)
	}
	name := strings.Join(argv, " ")

	client := newClient(*maxPages)
	ctx := context.Background()

	fmt.Fprintf(os.Stderr, "Resolving %q...\n", name)
	res := client.ResolveChannel(ctx, name)
	switch res.State {
	case youtube.ResolveFound:
	case youtube.ResolveNotFound:
		fmt.Fprintf(os.Stderr, "No channel found for %q\n", name)
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "Error resolving channel: %v\n", res.Err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Found %s (%s)\n", res.Title, res.ChannelID)

	stats, err := client.FetchChannelStats(ctx, []string{res.ChannelID})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching channel stats: %v\n", err)
		os.Exit(1)
	}
	if len(stats) == 0 || stats[0].UploadsPlaylistID == "" {
		fmt.Fprintf(os.Stderr, "Error: no uploads playlist for channel %s\n", res.ChannelID)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Channel has %d videos, uploads playlist %s\n",
		stats[0].TotalVideos, stats[0].UploadsPlaylistID)

	videoIDs, err := client.ListPlaylistVideoIDs(ctx, stats[0].UploadsPlaylistID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing playlist videos: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Enumerated %d video IDs, fetching details...\n", len(videoIDs))

	table, err := client.FetchVideoDetails(ctx, videoIDs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching video details: %v\n", err)
		os.Exit(1)
	}

	writeVideoTable(table, *format, *out)
	fmt.Fprintf(os.Stderr, "\nTotal: %d videos\n", len(table))
}

// gatherIDs flattens argument lists where IDs may be space or comma
// separated.
func gatherIDs(argv []string) []string {
	var ids []string
	for _, arg := range argv {
		for _, id := range strings.Split(arg, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func writeVideoTable(table models.VideoTable, format, out string) {
	w := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "csv":
		if err := models.WriteCSV(w, table); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
			os.Exit(1)
		}
	case "json":
		data, err := json.MarshalIndent(table, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintln(w, string(data))
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid -format value %q (use csv or json)\n", format)
		os.Exit(1)
	}

	if out != "" {
		fmt.Fprintf(os.Stderr, "Wrote %s\n", out)
	}
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
