// Command glootie-zed builds the extension as a C shared library:
//
//	go build -buildmode=c-shared -o libglootie_zed.so ./cmd/glootie-zed
//
// Booleans cross the boundary as uint8 (GoUint8 in the generated header).
package main

import "C"

import (
	"glootie_zed/bridge"
)

//export init_extension
func init_extension() {
	bridge.InitExtension()
}

//export get_extension_status
func get_extension_status() uint8 {
	return bridge.GetExtensionStatus()
}

//export deactivate_extension
func deactivate_extension() {
	bridge.DeactivateExtension()
}

//export toggle_assistant
func toggle_assistant() {
	bridge.ToggleAssistant()
}

//export get_assistant_status
func get_assistant_status() uint8 {
	return bridge.GetAssistantStatus()
}

// configure_extension 接收 ini 文本，成功返回 1，配置被拒绝返回 0。
//
//export configure_extension
func configure_extension(content *C.char) uint8 {
	if content == nil {
		return 0
	}
	if err := bridge.ConfigureExtension(C.GoString(content)); err != nil {
		return 0
	}
	return 1
}

// configure_extension_file 与 configure_extension 相同，但参数是 ini 文件路径。
//
//export configure_extension_file
func configure_extension_file(path *C.char) uint8 {
	if path == nil {
		return 0
	}
	if err := bridge.ConfigureExtensionFile(C.GoString(path)); err != nil {
		return 0
	}
	return 1
}

func main() {}
