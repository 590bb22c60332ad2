package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Krish2786/LegalMind-AI/internal/server"
	"github.com/Krish2786/LegalMind-AI/internal/webui"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local web UI",
	Long: `Starts a local web server hosting the LegalMind browser UI: upload a
document, read the highlighted summary, chat about it, and browse the
activity history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		a, closeApp, err := buildApp(cfg)
		if err != nil {
			return err
		}
		defer closeApp()

		srv := server.New(server.Config{Port: cfg.Port})
		webui.New(a).RegisterRoutes(srv.Router())

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "LegalMind v%s\n", Version)
		fmt.Fprintf(os.Stderr, "  Web UI:   http://localhost:%d\n", cfg.Port)
		fmt.Fprintf(os.Stderr, "  Service:  %s\n", cfg.ServiceURL)

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}
