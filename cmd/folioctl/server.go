package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/folioboard/folioboard/pkg/audit"
	"github.com/folioboard/folioboard/pkg/config"
	"github.com/folioboard/folioboard/pkg/db"
	"github.com/folioboard/folioboard/pkg/server"
	"github.com/folioboard/folioboard/pkg/server/endpoints"
	"github.com/folioboard/folioboard/pkg/session"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8000"
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the FolioBoard application server",
	Long: `Run the FolioBoard application server.

To run the server requires the environment variables FOLIOBOARD_SESSION_KEY
and FOLIOBOARD_DB.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Validate required environment variables first (fail fast)
		sessionKey, ok := os.LookupEnv("FOLIOBOARD_SESSION_KEY")
		if !ok {
			fmt.Fprintln(os.Stderr, "FOLIOBOARD_SESSION_KEY environment variable is required")
			os.Exit(1)
		}
		if len(sessionKey) < 32 {
			fmt.Fprintln(os.Stderr, "FOLIOBOARD_SESSION_KEY must be at least 32 bytes")
			os.Exit(1)
		}

		if os.Getenv("FOLIOBOARD_DB") == "" {
			fmt.Fprintln(os.Stderr, "FOLIOBOARD_DB environment variable is required")
			os.Exit(1)
		}

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}
		audit.SetEnabled(cfg.AuditEnabled)

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to open database: %v\n", err)
			os.Exit(1)
		}

		auditStore, err := audit.NewStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to open audit database: %v\n", err)
			os.Exit(1)
		}
		if auditStore != nil {
			if err := auditStore.Init(); err != nil {
				fmt.Fprintf(os.Stderr, "Unable to prepare audit database: %v\n", err)
				os.Exit(1)
			}
			audit.SetStore(auditStore)
		}

		sessions := session.NewIssuer([]byte(sessionKey), cfg.SessionTTL())

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		s := server.NewServer(sessions, database, host, port)

		endpoints.RegisterEndpoints(s)

		if watch, _ := cmd.Flags().GetBool("watch-config"); watch {
			stop := make(chan struct{})
			defer close(stop)
			go func() {
				if err := config.Watch(stop); err != nil {
					log.Printf("Configuration watcher stopped: %v\n", err)
				}
			}()
		}

		log.Printf("Running server at http://%s:%s...\n", host, port)
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
	serverCmd.Flags().Bool("watch-config", false, "reload configuration when the config file changes")
}
