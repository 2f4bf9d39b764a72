package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// @title           Bookshelf API
// @version         1.0
// @description     图书书架服务:新增、查询、更新、删除图书
// @host            localhost:9000
// @BasePath        /
// @schemes         http

// configPath --config 指定的配置文件,为空时按默认路径查找
var configPath string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd 根命令,不带子命令时等同于 serve
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bookshelf",
		Short:         "Bookshelf 图书书架HTTP服务",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "配置文件路径(默认查找 ./config/config.yaml)")

	root.AddCommand(newServeCmd(), newEventsCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "启动HTTP服务",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
}
