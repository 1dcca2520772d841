package app

import "github.com/kmacinski/gridos/internal/metrics"

// Modal names
const (
	ModalHelp = "help"
)

// State holds the shared application state
type State struct {
	// Boot
	Booting      bool
	BootProgress int

	// Data
	Metrics metrics.Sample

	// UI
	ActiveModal string // empty if no modal

	// Status message, cleared on the next key
	Status string
}

// NewState creates a new state with defaults
func NewState(skipBoot bool) *State {
	return &State{
		Booting: !skipBoot,
		Metrics: metrics.Initial,
	}
}

// AdvanceBoot moves the boot bar forward by step, capped at 100
func (s *State) AdvanceBoot(step int) {
	s.BootProgress = min(100, s.BootProgress+step)
}

// BootComplete reports whether the boot bar is full
func (s *State) BootComplete() bool {
	return s.BootProgress >= 100
}

// ToggleModal toggles a modal on/off
func (s *State) ToggleModal(name string) {
	if s.ActiveModal == name {
		s.ActiveModal = ""
	} else {
		s.ActiveModal = name
	}
}

// CloseModal closes any open modal
func (s *State) CloseModal() {
	s.ActiveModal = ""
}
