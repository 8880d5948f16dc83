package globalstate

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"glootie_zed/internal/extension"
	"glootie_zed/internal/shared/logger"
)

// Manager 持有进程内唯一的 extension.State，
// 所有读写都在同一把互斥锁下完成。
type Manager struct {
	mu    sync.Mutex
	state *extension.State

	id string
}

// 进程级单例，首次访问时才创建，之后一直存活到进程退出。
var global = sync.OnceValue(func() *Manager {
	m := NewManager()
	m.logger().Debug().Msg("Extension state created.")
	return m
})

// Extension returns the process-wide manager.
func Extension() *Manager {
	return global()
}

// NewManager builds a standalone manager with both flags cleared.
func NewManager() *Manager {
	return &Manager{
		state: extension.New(),
		id:    uuid.NewString(),
	}
}

// logger 每次从全局 logger 派生，这样 logger.Init 重新配置后也能生效。
func (m *Manager) logger() *zerolog.Logger {
	l := logger.WithComponent("extension").With().Str("instance", m.id).Logger()
	return &l
}

// ID identifies this manager in log output.
func (m *Manager) ID() string {
	return m.id
}

// Do runs fn with exclusive access to the state.
// Unlock is deferred, so a panic in fn never leaves the lock held.
func (m *Manager) Do(fn func(s *extension.State)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(m.state)
}

// View 在锁内取快照，然后在锁外调用 fn。
func (m *Manager) View(fn func(st extension.Status)) {
	fn(m.Snapshot())
}

func (m *Manager) Snapshot() extension.Status {
	var st extension.Status
	m.Do(func(s *extension.State) { st = s.Snapshot() })
	return st
}

func (m *Manager) Activate() {
	m.Do(func(s *extension.State) { s.Activate() })
	m.logger().Debug().Msg("Extension activated.")
}

func (m *Manager) Deactivate() {
	m.Do(func(s *extension.State) { s.Deactivate() })
	m.logger().Debug().Msg("Extension deactivated.")
}

func (m *Manager) IsActive() bool {
	var active bool
	m.Do(func(s *extension.State) { active = s.IsActive() })
	return active
}

func (m *Manager) IsAssistantEnabled() bool {
	var enabled bool
	m.Do(func(s *extension.State) { enabled = s.IsAssistantEnabled() })
	return enabled
}

// ToggleAssistant flips the assistant flag and returns the new value.
func (m *Manager) ToggleAssistant() bool {
	var enabled bool
	m.Do(func(s *extension.State) {
		s.ToggleAssistant()
		enabled = s.IsAssistantEnabled()
	})
	m.logger().Debug().Bool("assistantEnabled", enabled).Msg("Assistant toggled.")
	return enabled
}
