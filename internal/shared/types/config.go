package types

// LogConf contains logging specific configuration
type LogConf struct {
	Level string `ini:"level"`
}

// ExtensionConf 对应 [extension] 段，控制宿主加载后的行为。
type ExtensionConf struct {
	// AutoActivate 为 true 时，应用配置即激活扩展；为 false 时不做任何改动。
	AutoActivate bool `ini:"auto_activate"`
}

// Config 是扩展的统一配置结构体
type Config struct {
	LogConf       `ini:"log"`
	ExtensionConf `ini:"extension"`
}
