// alienprobe 命令行工具：校验日志配置、预览各 dispatcher 的输出行。
//
// 用法：
//
//	alienprobe validate -c logging.toml
//	alienprobe render -c logging.toml -l warning -m "disk almost full" -p disk=/dev/sda1
//	alienprobe version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	c := &cobra.Command{
		Use:          "alienprobe",
		Short:        "Alienprobe logging toolkit",
		Long:         "Validate alienprobe logging configuration files and preview dispatcher output.",
		SilenceUsage: true,
	}

	c.AddCommand(newValidateCommand())
	c.AddCommand(newRenderCommand())
	c.AddCommand(newVersionCommand())

	return c
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the alienprobe version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "alienprobe "+version)
		},
	}
}
