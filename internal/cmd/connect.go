package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yixuqiu/page-spy-web/internal/filter"
	"github.com/yixuqiu/page-spy-web/internal/model"
	"github.com/yixuqiu/page-spy-web/internal/normalize"
	"github.com/yixuqiu/page-spy-web/internal/output"
	"github.com/yixuqiu/page-spy-web/internal/server"
	"github.com/yixuqiu/page-spy-web/internal/store"
	"github.com/yixuqiu/page-spy-web/internal/transport"
)

var (
	secret   string
	endpoint string
	port     string
)

var connectCmd = &cobra.Command{
	Use:   "connect <address>",
	Short: "Attach to a live debugging session",
	Long: `Attach to the debugging session identified by the given address
and stream its telemetry into the local snapshot. Console records are
rendered to the terminal; the full snapshot is served on the dashboard.

Examples:
  pagespy connect room-42 --secret s3cret
  pagespy connect "room%2D42#frag" --secret s3cret --port 6752
  pagespy connect room-42 --level warn,error --filter 'api/**'`,
	Args: cobra.ExactArgs(1),
	RunE: runConnect,
}

func init() {
	rootCmd.AddCommand(connectCmd)

	connectCmd.Flags().StringVarP(&secret, "secret", "s", "", "session secret credential")
	connectCmd.Flags().StringVarP(&endpoint, "endpoint", "e", "ws://localhost:6751/ws", "debug server websocket endpoint")
	connectCmd.Flags().StringVarP(&port, "port", "p", "6752", "dashboard port")
}

func runConnect(cmd *cobra.Command, args []string) error {
	// --- Set up context with graceful shutdown ---
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\npagespy shutting down gracefully...")
		cancel()
	}()

	// --- Display filter with config hot reload ---
	disp := filter.New(levelFilter, msgPatterns)
	viper.OnConfigChange(func(e fsnotify.Event) {
		disp.Update(viper.GetString("level"), viper.GetStringSlice("filter"))
		log.Printf("reloaded display filter from %s", e.Name)
	})
	viper.WatchConfig()

	// --- Choose renderer ---
	var renderer output.Renderer
	switch strings.ToLower(outputFmt) {
	case "json":
		renderer = output.NewJSONRenderer()
	default:
		renderer = output.NewTextRenderer()
	}

	// --- Transport, snapshot store, dashboard ---
	client := transport.NewClient(endpoint)

	st := store.New(store.Options{
		Sender:    client,
		Normalize: normalize.Normalize,
		ConsoleTap: func(rec model.ConsoleRecord) {
			if disp.Show(rec) {
				if err := renderer.Render(rec); err != nil {
					log.Printf("render error: %v", err)
				}
			}
		},
	})
	defer st.Close()

	// Every channel feeds the same reconciliation entry point.
	for _, ch := range model.Channels {
		client.AddListener(ch, st.Apply)
	}

	if err := client.Connect(ctx, args[0], secret); err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	if !client.Active() {
		return fmt.Errorf("no session for address %q", args[0])
	}

	fmt.Fprintf(os.Stderr, "pagespy attached to room %q\n", transport.DeriveRoom(args[0]))
	fmt.Fprintf(os.Stderr, "dashboard on http://localhost:%s\n\n", port)

	srv := server.New(st, port)
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("dashboard server stopped: %v", err)
			cancel()
		}
	}()

	// --- Read loop: blocks until disconnect or shutdown ---
	client.Start(ctx)

	return nil
}
