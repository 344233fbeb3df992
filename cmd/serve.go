package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler-comparison/api"
)

var port int // Listen port, overrides the configured port when set

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling simulators over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if port != 0 {
			cfg.Port = port
		}

		app := api.NewApp(cfg)
		addr := fmt.Sprintf(":%d", cfg.Port)
		logrus.Infof("listening on %s", addr)
		return app.Listen(addr)
	},
}

func init() {
	serveCmd.Flags().IntVar(&port, "port", 0, "Listen port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
