package servers

import (
	"cookiebank/interfaces"
)

// Manager holds and manages all the servers.
type Manager struct {
	servers []Server
	log     interfaces.Logger
}

// NewManager creates a new server manager.
func NewManager(log interfaces.Logger) *Manager {
	return &Manager{log: log}
}

// AddServer adds a new server to the manager.
func (m *Manager) AddServer(server Server) {
	m.servers = append(m.servers, server)
}

// StartAll starts all registered servers.
func (m *Manager) StartAll() {
	for _, s := range m.servers {
		m.log.Info("Starting server", "name", s.Name())
		if err := s.Start(); err != nil {
			m.log.Error("Failed to start server", "name", s.Name(), "error", err)
			continue
		}
		m.log.Info("Server started successfully", "name", s.Name())
	}
}

// StopAll stops all registered servers.
func (m *Manager) StopAll() {
	for _, s := range m.servers {
		m.log.Info("Stopping server", "name", s.Name())
		if err := s.Stop(); err != nil {
			m.log.Error("Failed to stop server", "name", s.Name(), "error", err)
		}
	}
}
