package auth

import "time"

func (a *Manager) SetClock(now func() time.Time) {
	a.now = now
}
