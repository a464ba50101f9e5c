package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ceyewan/alienprobe/config"
)

// newValidateCommand 校验配置文件并列出将激活的 dispatcher。
//
// 所有校验问题一次性打到 stderr，而不是在第一个问题上停下。
func newValidateCommand() *cobra.Command {
	var path string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate a logging configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(path)
			if err != nil {
				issues := config.Issues(err)
				if len(issues) == 0 {
					return err
				}
				for _, iss := range issues {
					fmt.Fprintln(cmd.ErrOrStderr(), iss.Error())
				}
				return fmt.Errorf("found %d issue(s) in %s", len(issues), path)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: OK\n", cfg.Path)
			fmt.Fprintf(out, "default level: %s\n", cfg.Levels.Default)

			overrides := make([]string, 0, len(cfg.Levels.Overrides))
			for name := range cfg.Levels.Overrides {
				overrides = append(overrides, name)
			}
			sort.Strings(overrides)
			for _, name := range overrides {
				fmt.Fprintf(out, "override %s: %s\n", name, cfg.Levels.Overrides[name])
			}

			for _, d := range cfg.Dispatchers {
				fmt.Fprintf(out, "dispatcher %s: class=%s utc=%v colorize=%v\n",
					d.Name, d.Class, d.UTC, d.Colorize)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&path, "config", "c", "", "config file path")
	_ = c.MarkFlagRequired("config")

	return c
}
