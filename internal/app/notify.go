package app

import "github.com/ncruces/zenity"

// notify raises a desktop notification when they are enabled. Best effort:
// failures are logged at debug and forgotten.
func (a *App) notify(title, text string) {
	if !a.cfg.DesktopNotifications {
		return
	}
	go func() {
		if err := zenity.Notify(text, zenity.Title(title)); err != nil {
			a.log.Debug("notification", "error", err)
		}
	}()
}
