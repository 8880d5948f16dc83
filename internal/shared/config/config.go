package config

import (
	"fmt"

	"gopkg.in/ini.v1"

	"glootie_zed/internal/shared/types"
)

// Default returns the configuration used for keys the host leaves out.
// auto_activate 默认开启，与扩展清单里 glootie.autoActivate 的默认值一致。
func Default() *types.Config {
	return &types.Config{
		LogConf:       types.LogConf{Level: "info"},
		ExtensionConf: types.ExtensionConf{AutoActivate: true},
	}
}

// LoadIni 从文件加载 ini 配置，覆盖 cfg 中已有的值。
func LoadIni(cfg *types.Config, fileName string) error {
	return load(cfg, fileName)
}

// LoadIniContent 从内存中的 ini 文本加载配置，宿主只传内容不传路径时使用。
func LoadIniContent(cfg *types.Config, content string) error {
	return load(cfg, []byte(content))
}

func load(cfg *types.Config, source interface{}) error {
	if cfg == nil {
		return fmt.Errorf("config target is nil")
	}
	iniFile, err := ini.Load(source)
	if err != nil {
		return fmt.Errorf("failed to parse ini content: %w", err)
	}
	if err := iniFile.MapTo(cfg); err != nil {
		return fmt.Errorf("failed to map ini content to config struct: %w", err)
	}
	return nil
}
