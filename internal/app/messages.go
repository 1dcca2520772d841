package app

import "github.com/kmacinski/gridos/internal/config"

// BootTickMsg advances the boot bar
type BootTickMsg struct{}

// BootDoneMsg ends the boot screen
type BootDoneMsg struct{}

// MetricsTickMsg asks for the next metrics sample
type MetricsTickMsg struct{}

// ConfigReloadedMsg is sent when the config file changed on disk
type ConfigReloadedMsg struct {
	Config config.Config
	Err    error
}
