package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/ceyewan/alienprobe/format"
	"github.com/ceyewan/alienprobe/level"
	"github.com/ceyewan/alienprobe/xerrors"
)

const (
	sectionCommon = "common"
	sectionLevels = "log_levels"

	keyDispatchers     = "dispatchers"
	keyLogInstanceID   = "log_instance_id"
	keyDefaultLogLevel = "default_log_level"
	keyClass           = "dispatcher_class_identifier"
	keyDatetimeFormat  = "datetime_format"
	keyUTC             = "log_utc_timezone"
	keyColorize        = "colorize_messages"
	keyMessageFormat   = "message_format"
	keyExceptionFormat = "exception_format"
)

const levelNamesHint = "one of trace, debug, info, notice, warning, error, critical, fatal"

// Load 从文件加载并校验配置
//
// 全部校验问题聚合在一个错误里返回，不会返回半成品配置。
//
// 示例：
//
//	cfg, err := config.Load("logging.toml")
//	if err != nil {
//		for _, iss := range config.Issues(err) {
//			fmt.Fprintln(os.Stderr, iss)
//		}
//		os.Exit(1)
//	}
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, xerrors.Wrapf(err, "failed to read config file %s", path)
	}
	cfg, err := build(v)
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

// Parse 从 reader 解析并校验配置，语义与 Load 相同
func Parse(r io.Reader) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(r); err != nil {
		return nil, xerrors.Wrap(err, "failed to parse config")
	}
	return build(v)
}

// LoadFromEnv 按环境变量定位配置文件并加载
//
// 先尽力加载工作目录下的 .env，再读 ALIENPROBE_CONFIG_FILE_PATH。
func LoadFromEnv() (*Config, error) {
	_ = godotenv.Load()
	path := os.Getenv(EnvConfigFile)
	if path == "" {
		return nil, xerrors.Wrapf(ErrMissingRequiredKey, "environment variable %s is not set", EnvConfigFile)
	}
	return Load(path)
}

// ReloadLevels 重新读取文件，只校验 [log_levels] 段
//
// 供热重载路径使用：其余段的问题不影响级别换入。
func ReloadLevels(path string) (*LevelConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, xerrors.Wrapf(err, "failed to read config file %s", path)
	}
	var issues []error
	lc := parseLevels(v, &issues)
	if len(issues) > 0 {
		return nil, xerrors.Wrap(xerrors.Combine(issues...), "log level validation failed")
	}
	return lc, nil
}

// build 把 viper 内容转成 Config，聚合所有校验问题
func build(v *viper.Viper) (*Config, error) {
	var issues []error
	cfg := &Config{}

	names := parseCommon(v, &cfg.Common, &issues)
	cfg.Levels = parseLevels(v, &issues)

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			issues = append(issues, newIssue(ErrInvalidValue, "common.dispatchers",
				fmt.Sprintf("dispatcher %q is listed more than once", name), "remove the duplicate entry"))
			continue
		}
		seen[name] = true
		if v.Get(name) == nil {
			issues = append(issues, newIssue(ErrMissingSection, name,
				fmt.Sprintf("dispatcher section [%s] is missing", name),
				"add the section or remove it from common.dispatchers"))
			continue
		}
		cfg.Dispatchers = append(cfg.Dispatchers, parseDispatcher(v, name, &issues))
	}

	if len(issues) > 0 {
		return nil, xerrors.Wrap(xerrors.Combine(issues...), "configuration validation failed")
	}
	return cfg, nil
}

// parseCommon 解析 [common]，返回小写化后的分发器名列表
func parseCommon(v *viper.Viper, out *CommonConfig, issues *[]error) []string {
	out.LogInstanceID = true

	sec, ok := table(v, sectionCommon, issues)
	if !ok {
		return nil
	}

	var names []string
	rawList, present := sec[keyDispatchers]
	if !present {
		*issues = append(*issues, newIssue(ErrMissingRequiredKey, "common.dispatchers",
			"dispatchers list is missing", "list at least one dispatcher section name"))
	} else if list, err := cast.ToStringSliceE(rawList); err != nil {
		*issues = append(*issues, newIssue(ErrInvalidValue, "common.dispatchers",
			"dispatchers must be an array of strings", ""))
	} else if len(list) == 0 {
		*issues = append(*issues, newIssue(ErrMissingRequiredKey, "common.dispatchers",
			"dispatchers list is empty", "list at least one dispatcher section name"))
	} else {
		for _, n := range list {
			n = strings.ToLower(strings.TrimSpace(n))
			if n == "" {
				*issues = append(*issues, newIssue(ErrInvalidValue, "common.dispatchers",
					"dispatcher name must not be empty", ""))
				continue
			}
			names = append(names, n)
		}
	}

	if raw, present := sec[keyLogInstanceID]; present {
		b, err := cast.ToBoolE(raw)
		if err != nil {
			*issues = append(*issues, newIssue(ErrInvalidValue, "common.log_instance_id",
				"log_instance_id must be a boolean", ""))
		} else {
			out.LogInstanceID = b
		}
	}
	out.Dispatchers = names
	return names
}

// parseLevels 解析 [log_levels]，嵌套表压平成点分路径
func parseLevels(v *viper.Viper, issues *[]error) *LevelConfig {
	sec, ok := table(v, sectionLevels, issues)
	if !ok {
		return nil
	}

	lc := &LevelConfig{Default: level.Info, Overrides: make(map[string]level.Level)}

	rawDef, present := sec[keyDefaultLogLevel]
	if !present {
		*issues = append(*issues, newIssue(ErrMissingRequiredKey, "log_levels.default_log_level",
			"default_log_level is missing", levelNamesHint))
	} else if lvl, ok := parseLevelValue(rawDef, "log_levels.default_log_level", issues); ok {
		lc.Default = lvl
	}

	for key, val := range sec {
		if key == keyDefaultLogLevel {
			continue
		}
		flattenLevels(key, val, lc.Overrides, issues)
	}
	return lc
}

// flattenLevels 递归展开级别覆盖项，路径统一小写
func flattenLevels(path string, val any, out map[string]level.Level, issues *[]error) {
	if nested, ok := val.(map[string]any); ok {
		for key, sub := range nested {
			flattenLevels(path+"."+key, sub, out, issues)
		}
		return
	}
	if lvl, ok := parseLevelValue(val, "log_levels."+path, issues); ok {
		out[strings.ToLower(path)] = lvl
	}
}

// parseLevelValue 将配置值解析成 Level，失败时记录 Issue
func parseLevelValue(raw any, path string, issues *[]error) (level.Level, bool) {
	s, err := cast.ToStringE(raw)
	if err != nil {
		*issues = append(*issues, newIssue(ErrInvalidValue, path, "log level must be a string", levelNamesHint))
		return 0, false
	}
	lvl, err := level.Parse(s)
	if err != nil {
		*issues = append(*issues, newIssue(ErrInvalidLogLevel, path, err.Error(), levelNamesHint))
		return 0, false
	}
	return lvl, true
}

// parseDispatcher 解析单个分发器段，缺省值见包常量
func parseDispatcher(v *viper.Viper, name string, issues *[]error) DispatcherConfig {
	dc := DispatcherConfig{
		Name:            name,
		DatetimeFormat:  DefaultDatetimeFormat,
		UTC:             true,
		Colorize:        true,
		ExceptionFormat: defaultExceptionTemplate,
	}

	sec, ok := v.Get(name).(map[string]any)
	if !ok {
		*issues = append(*issues, newIssue(ErrInvalidValue, name,
			fmt.Sprintf("[%s] must be a table", name), ""))
		return dc
	}

	if raw, present := sec[keyClass]; !present {
		*issues = append(*issues, newIssue(ErrMissingRequiredKey, name+"."+keyClass,
			"dispatcher_class_identifier is missing", "name a registered dispatcher class"))
	} else if s, ok := stringValue(raw, name+"."+keyClass, issues); ok {
		if s = strings.ToLower(strings.TrimSpace(s)); s == "" {
			*issues = append(*issues, newIssue(ErrMissingRequiredKey, name+"."+keyClass,
				"dispatcher_class_identifier must not be empty", "name a registered dispatcher class"))
		} else {
			dc.Class = s
		}
	}

	if raw, present := sec[keyDatetimeFormat]; present {
		if s, ok := stringValue(raw, name+"."+keyDatetimeFormat, issues); ok {
			dc.DatetimeFormat = s
		}
	}
	if raw, present := sec[keyUTC]; present {
		if b, err := cast.ToBoolE(raw); err != nil {
			*issues = append(*issues, newIssue(ErrInvalidValue, name+"."+keyUTC,
				"log_utc_timezone must be a boolean", ""))
		} else {
			dc.UTC = b
		}
	}
	if raw, present := sec[keyColorize]; present {
		if b, err := cast.ToBoolE(raw); err != nil {
			*issues = append(*issues, newIssue(ErrInvalidValue, name+"."+keyColorize,
				"colorize_messages must be a boolean", ""))
		} else {
			dc.Colorize = b
		}
	}

	if raw, present := sec[keyMessageFormat]; !present {
		*issues = append(*issues, newIssue(ErrMissingRequiredKey, name+"."+keyMessageFormat,
			"message_format is missing", "provide the output line template"))
	} else if s, ok := stringValue(raw, name+"."+keyMessageFormat, issues); ok {
		if s == "" {
			*issues = append(*issues, newIssue(ErrMissingRequiredKey, name+"."+keyMessageFormat,
				"message_format must not be empty", "provide the output line template"))
		} else if tpl, err := format.Parse(s); err != nil {
			*issues = append(*issues, newIssue(ErrInvalidTemplate, name+"."+keyMessageFormat,
				err.Error(), "balance [[ and ]] pairs"))
		} else {
			dc.MessageFormat = tpl
		}
	}

	if raw, present := sec[keyExceptionFormat]; present {
		if s, ok := stringValue(raw, name+"."+keyExceptionFormat, issues); ok {
			if tpl, err := format.Parse(s); err != nil {
				*issues = append(*issues, newIssue(ErrInvalidTemplate, name+"."+keyExceptionFormat,
					err.Error(), "balance [[ and ]] pairs"))
			} else {
				dc.ExceptionFormat = tpl
			}
		}
	}
	return dc
}

// table 取出顶层表，缺失或类型不对时记录 Issue
func table(v *viper.Viper, name string, issues *[]error) (map[string]any, bool) {
	raw := v.Get(name)
	if raw == nil {
		*issues = append(*issues, newIssue(ErrMissingSection, name,
			fmt.Sprintf("section [%s] is missing", name), ""))
		return nil, false
	}
	sec, ok := raw.(map[string]any)
	if !ok {
		*issues = append(*issues, newIssue(ErrInvalidValue, name,
			fmt.Sprintf("[%s] must be a table", name), ""))
		return nil, false
	}
	return sec, true
}

// stringValue 将配置值转成字符串，失败时记录 Issue
func stringValue(raw any, path string, issues *[]error) (string, bool) {
	s, err := cast.ToStringE(raw)
	if err != nil {
		*issues = append(*issues, newIssue(ErrInvalidValue, path, "value must be a string", ""))
		return "", false
	}
	return s, true
}
