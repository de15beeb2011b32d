package http

import "sync"

// SessionNotices aviso pendiente para el formulario de login; se lee una sola vez.
type SessionNotices struct {
	mu      sync.Mutex
	pending string
}

// NewSessionNotices construye el buzón vacío.
func NewSessionNotices() *SessionNotices {
	return &SessionNotices{}
}

// SessionExpired registra que la API cerró la sesión (401/403).
func (n *SessionNotices) SessionExpired() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = "Su sesión expiró o fue revocada. Inicie sesión de nuevo."
}

// Clear descarta el aviso pendiente.
func (n *SessionNotices) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = ""
}

// Pop devuelve y borra el aviso pendiente.
func (n *SessionNotices) Pop() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	msg := n.pending
	n.pending = ""
	return msg
}
