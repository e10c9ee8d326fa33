package cmd

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"chemcalc/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculators over a websocket.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("addr") {
			cfg.Addr = serveAddr
		}
		upgrader := websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		}
		return server.NewServer(cfg, upgrader, calc).Serve()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":9000", "listen address, overrides [server] Addr")
}
