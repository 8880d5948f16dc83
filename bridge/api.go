package bridge

import (
	"encoding/json"
	"fmt"
	"runtime/debug"
	"sync"

	"glootie_zed/internal/extension"
	"glootie_zed/internal/shared/config"
	"glootie_zed/internal/shared/globalstate"
	"glootie_zed/internal/shared/logger"
	"glootie_zed/internal/shared/types"
)

// 这里的函数由 cmd/glootie-zed 导出给宿主 (C ABI)。
// 每个入口都会 recover，panic 不能穿过 CGo 边界。

var (
	// manager 返回入口函数操作的状态管理器，测试里会替换成独立实例。
	manager = globalstate.Extension

	// configMutex 串行化配置加载，宿主可能在多个线程上同时调用。
	configMutex sync.Mutex
)

// InitExtension activates the process-wide extension state.
func InitExtension() {
	defer recoverPanic("InitExtension")
	manager().Activate()
}

// GetExtensionStatus returns 1 if the extension is active, 0 otherwise.
func GetExtensionStatus() (status uint8) {
	defer recoverPanic("GetExtensionStatus")
	return boolToUint8(manager().IsActive())
}

// DeactivateExtension clears the active flag.
func DeactivateExtension() {
	defer recoverPanic("DeactivateExtension")
	manager().Deactivate()
}

// ToggleAssistant flips the assistant flag.
func ToggleAssistant() {
	defer recoverPanic("ToggleAssistant")
	manager().ToggleAssistant()
}

// GetAssistantStatus returns 1 if the assistant is enabled, 0 otherwise.
func GetAssistantStatus() (status uint8) {
	defer recoverPanic("GetAssistantStatus")
	return boolToUint8(manager().IsAssistantEnabled())
}

// ShowState 返回当前状态的 JSON 快照，例如 {"active":true,"assistantEnabled":false}。
func ShowState() (stateJson string) {
	defer recoverPanic("ShowState")

	manager().View(func(st extension.Status) {
		data, err := json.Marshal(st)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to marshal extension state")
			return
		}
		stateJson = string(data)
	})
	return stateJson
}

// ConfigureExtension applies an in-memory ini document:
// it re-initializes logging and activates the extension when auto_activate is set.
// On a parse error nothing is changed.
func ConfigureExtension(iniContent string) error {
	return configure("ConfigureExtension", func(cfg *types.Config) error {
		return config.LoadIniContent(cfg, iniContent)
	})
}

// ConfigureExtensionFile is ConfigureExtension for an ini file on disk.
func ConfigureExtensionFile(path string) error {
	return configure("ConfigureExtensionFile", func(cfg *types.Config) error {
		return config.LoadIni(cfg, path)
	})
}

func configure(entry string, load func(cfg *types.Config) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("go core panic in %s: %v\n\n%s", entry, r, debug.Stack())
		}
	}()

	configMutex.Lock()
	defer configMutex.Unlock()

	cfg := config.Default()
	if err := load(cfg); err != nil {
		return err
	}

	if err := logger.Init(cfg.LogConf); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	ext := manager()
	if cfg.ExtensionConf.AutoActivate {
		ext.Activate()
	}
	logger.Info().
		Str("instance", ext.ID()).
		Bool("autoActivate", cfg.ExtensionConf.AutoActivate).
		Msg("Extension configured.")
	return nil
}

// recoverPanic 把 panic 记录为错误日志，调用方返回零值。
func recoverPanic(entry string) {
	if r := recover(); r != nil {
		logger.Error().
			Str("entry", entry).
			Interface("panic", r).
			Str("stack", string(debug.Stack())).
			Msg("Recovered panic at extension boundary")
	}
}

func boolToUint8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
