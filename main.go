package main

import (
	"net/http"
	"os"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tofu/server"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	var (
		configPath string
		addr       string
		verbose    bool
	)

	root := &cobra.Command{
		Use:     "tofu",
		Short:   "TofuSoft 工程计算后端",
		Version: "1.0.0",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			server.LoadConfig(configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "conf/config.ini", "配置文件路径")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "输出调试日志")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "启动 websocket 计算服务",
		RunE: func(cmd *cobra.Command, args []string) error {
			upgrader.CheckOrigin = func(r *http.Request) bool {
				return true
			}
			s := server.NewServer(addr, upgrader)
			return s.Serve()
		},
	}
	serve.Flags().StringVar(&addr, "addr", "", "监听地址，默认取配置文件")
	root.AddCommand(serve)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
