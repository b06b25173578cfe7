package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// LongPressDelayKey is the key for the long press delay preference, in milliseconds
const LongPressDelayKey = "long_press_delay_ms"

// AppConfig holds the application-wide configuration
type AppConfig struct {
	prefs fyne.Preferences
}

// NewAppConfig creates a new AppConfig instance
func NewAppConfig(p fyne.Preferences) *AppConfig {
	return &AppConfig{prefs: p}
}

// GetLongPressDelay returns how long a press must be held to open the change picture dialog
func (c *AppConfig) GetLongPressDelay() time.Duration {
	ms := c.prefs.IntWithFallback(LongPressDelayKey, DefaultLongPressDelayMs)
	if ms < minLongPressDelayMs {
		ms = minLongPressDelayMs
	}
	return time.Duration(ms) * time.Millisecond
}

// SetLongPressDelay sets the long press delay
func (c *AppConfig) SetLongPressDelay(d time.Duration) {
	c.prefs.SetInt(LongPressDelayKey, int(d/time.Millisecond))
}

// HapticsEnabledKey is the key for the press feedback preference
const HapticsEnabledKey = "haptics_enabled"

// GetHapticsEnabled returns whether a long press is acknowledged with feedback
func (c *AppConfig) GetHapticsEnabled() bool {
	return c.prefs.BoolWithFallback(HapticsEnabledKey, true)
}

// SetHapticsEnabled sets whether a long press is acknowledged with feedback
func (c *AppConfig) SetHapticsEnabled(enabled bool) {
	c.prefs.SetBool(HapticsEnabledKey, enabled)
}
