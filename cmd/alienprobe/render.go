package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ceyewan/alienprobe/config"
	"github.com/ceyewan/alienprobe/dispatcher"
	"github.com/ceyewan/alienprobe/level"
	"github.com/ceyewan/alienprobe/logger"
)

// newRenderCommand 用样例消息预览各 dispatcher 渲染出的日志行。
//
// 不加 --dispatcher 时预览配置里激活的全部 dispatcher。
func newRenderCommand() *cobra.Command {
	var (
		path      string
		name      string
		levelName string
		text      string
		params    []string
		errText   string
		source    string
	)

	c := &cobra.Command{
		Use:   "render",
		Short: "Render a sample log line through configured dispatchers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			lvl, err := level.Parse(levelName)
			if err != nil {
				return err
			}

			host, hostErr := os.Hostname()
			if hostErr != nil {
				host = "Unknown"
			}

			msg := &dispatcher.Message{
				Time:        time.Now(),
				Level:       lvl,
				Source:      source,
				Text:        text,
				MachineName: host,
			}
			if cfg.Common.LogInstanceID {
				msg.InstanceID = logger.NewInstanceID()
			}
			if len(params) > 0 {
				msg.Params = make(map[string]any, len(params))
				for _, kv := range params {
					k, v, ok := strings.Cut(kv, "=")
					if !ok {
						return fmt.Errorf("invalid param %q, expected key=value", kv)
					}
					msg.Params[k] = v
				}
			}
			if errText != "" {
				msg.Err = errors.New(errText)
			}

			targets := cfg.Dispatchers
			if name != "" {
				d := cfg.Dispatcher(name)
				if d == nil {
					return fmt.Errorf("dispatcher %s is not configured in %s", name, path)
				}
				targets = []config.DispatcherConfig{*d}
			}

			for _, d := range targets {
				if len(targets) > 1 {
					fmt.Fprintf(cmd.OutOrStdout(), "[%s] ", d.Name)
				}
				fmt.Fprintln(cmd.OutOrStdout(), dispatcher.Render(&d, msg))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&path, "config", "c", "", "config file path")
	c.Flags().StringVarP(&name, "dispatcher", "d", "", "preview a single dispatcher by section name")
	c.Flags().StringVarP(&levelName, "level", "l", "info", "log level of the sample message")
	c.Flags().StringVarP(&text, "message", "m", "sample log message", "static text of the sample message")
	c.Flags().StringArrayVarP(&params, "param", "p", nil, "key=value parameter, repeatable")
	c.Flags().StringVarP(&errText, "error", "e", "", "attach an error with the given text")
	c.Flags().StringVarP(&source, "source", "s", "alienprobe.cli", "log source name")
	_ = c.MarkFlagRequired("config")

	return c
}
