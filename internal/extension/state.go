package extension

// State 保存扩展的两个独立开关。
// State 本身不加锁，并发访问由 globalstate.Manager 统一串行化。
type State struct {
	active           bool
	assistantEnabled bool
}

// Status is a value copy of State, safe to hand out after the lock is released.
type Status struct {
	Active           bool `json:"active"`
	AssistantEnabled bool `json:"assistantEnabled"`
}

// New returns a State with both flags cleared.
func New() *State {
	return &State{}
}

// Activate marks the extension as activated by the host.
func (s *State) Activate() {
	s.active = true
}

func (s *State) Deactivate() {
	s.active = false
}

func (s *State) IsActive() bool {
	return s.active
}

func (s *State) IsAssistantEnabled() bool {
	return s.assistantEnabled
}

// ToggleAssistant 翻转 assistant 开关，不影响 active。
func (s *State) ToggleAssistant() {
	s.assistantEnabled = !s.assistantEnabled
}

func (s *State) Snapshot() Status {
	return Status{
		Active:           s.active,
		AssistantEnabled: s.assistantEnabled,
	}
}
