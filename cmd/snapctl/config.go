package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v3"

	"github.com/omeyang/snaplog/pkg/snaplog"
)

// fileConfig 配置文件内容。为 dir/name/level 提供缺省值，命令行参数优先。
//
// level 以字符串承载，经 snaplog.ParseLevel 校验，未知级别在加载时即报错。
type fileConfig struct {
	Dir   string `koanf:"dir"`
	Name  string `koanf:"name"`
	Level string `koanf:"level"`
}

// settings 一次命令执行的最终生效参数。
type settings struct {
	dir   string
	name  string
	level snaplog.Level
}

// loadConfig 从文件加载配置，按扩展名识别格式（.yaml/.yml/.json）。
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return cfg, &usageError{err: fmt.Errorf("不支持的配置文件格式: %s", path)}
	}

	data, err := os.ReadFile(path) //#nosec G304 -- 配置路径由操作者指定
	if err != nil {
		return cfg, fmt.Errorf("读取配置文件: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return cfg, fmt.Errorf("解析配置文件 %s: %w", path, err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("解析配置文件 %s: %w", path, err)
	}
	return cfg, nil
}

// resolveSettings 合并配置文件与命令行参数，命令行优先。
func resolveSettings(cmd *cli.Command) (settings, error) {
	s := settings{level: snaplog.LevelInfo}

	if path := cmd.String("config"); path != "" {
		cfg, err := loadConfig(path)
		if err != nil {
			return s, err
		}
		s.dir = cfg.Dir
		s.name = cfg.Name
		if cfg.Level != "" {
			level, err := snaplog.ParseLevel(cfg.Level)
			if err != nil {
				return s, &usageError{err: err}
			}
			s.level = level
		}
	}

	if dir := cmd.String("dir"); dir != "" {
		s.dir = dir
	}
	if name := cmd.String("name"); name != "" {
		s.name = name
	}
	if lvl := cmd.String("level"); lvl != "" {
		level, err := snaplog.ParseLevel(lvl)
		if err != nil {
			return s, &usageError{err: err}
		}
		s.level = level
	}

	if s.dir == "" {
		return s, &usageError{err: fmt.Errorf("缺少日志目录（--dir 或配置文件 dir）")}
	}
	if s.name == "" {
		return s, &usageError{err: fmt.Errorf("缺少日志名称（--name 或配置文件 name）")}
	}
	return s, nil
}
