package commands

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/opsintel/opsintel-mcp/internal/config"
	"github.com/opsintel/opsintel-mcp/internal/httpapi"
	"github.com/opsintel/opsintel-mcp/internal/logging"
	"github.com/opsintel/opsintel-mcp/internal/mcpserver"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose     bool
	openBrowser bool
	cfg         *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "opsintel",
	Short: "opsintel is an optimization-as-a-service server for scheduling, routing, and packing",
	Long: `opsintel solves flexible job-shop scheduling, vehicle routing, and bin-packing
problems, and layers sensitivity, robustness, stochastic, Pareto, and prescriptive
analysis on top of any of them.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load configuration")
		}

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("opsintel starting")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := fmt.Sprintf(":%d", cfg.Port)
		if openBrowser {
			if err := browser.OpenURL(fmt.Sprintf("http://localhost:%d/", cfg.Port)); err != nil {
				log.Warn().Err(err).Msg("failed to open browser")
			}
		}
		log.Info().Str("addr", addr).Msg("HTTP server starting")
		return http.ListenAndServe(addr, httpapi.NewServer())
	},
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server over stdio instead of the HTTP transport",
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Info().Msg("MCP server starting stdio loop")
		return mcpserver.Serve(context.Background(), Version)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.Flags().BoolVar(&openBrowser, "open", false, "open the server's root page in a browser on startup")
	rootCmd.AddCommand(mcpCmd)
}
