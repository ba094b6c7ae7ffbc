// Package analytics accumulates session metrics and derives per-minute
// rates from them.
package analytics

import (
	"time"

	"github.com/KirkDiggler/rpg-idle/internal/pkg/clock"
)

// Counters are the monotonically increasing totals
type Counters struct {
	ZonesCleared    int64 `json:"zones_cleared"`
	MonstersKilled  int64 `json:"monsters_killed"`
	GoldEarned      int64 `json:"gold_earned"`
	XPGained        int64 `json:"xp_gained"`
	ItemsCrafted    int64 `json:"items_crafted"`
	QuestsCompleted int64 `json:"quests_completed"`
	PrestigeCount   int64 `json:"prestige_count"`
}

func (c Counters) sub(o Counters) Counters {
	return Counters{
		ZonesCleared:    c.ZonesCleared - o.ZonesCleared,
		MonstersKilled:  c.MonstersKilled - o.MonstersKilled,
		GoldEarned:      c.GoldEarned - o.GoldEarned,
		XPGained:        c.XPGained - o.XPGained,
		ItemsCrafted:    c.ItemsCrafted - o.ItemsCrafted,
		QuestsCompleted: c.QuestsCompleted - o.QuestsCompleted,
		PrestigeCount:   c.PrestigeCount - o.PrestigeCount,
	}
}

// DailyStats are the counters of one calendar day
type DailyStats struct {
	Date string `json:"date"`
	Counters
}

// Session is the transient part of an active session. The caller keeps it
// in memory and re-attaches it after loading persisted metrics.
type Session struct {
	Start time.Time
	Base  Counters
}

// Rates are per-minute rates over a time window
type Rates struct {
	GoldPerMinute  float64       `json:"gold_per_minute"`
	XPPerMinute    float64       `json:"xp_per_minute"`
	ZonesPerMinute float64       `json:"zones_per_minute"`
	Elapsed        time.Duration `json:"elapsed"`
}

// Metrics is the durable analytics record
type Metrics struct {
	Counters
	TotalSessionTime     time.Duration `json:"total_session_time"`
	SessionsCount        int64         `json:"sessions_count"`
	AverageSessionLength time.Duration `json:"average_session_length"`
	ZonesPerMinute       float64       `json:"zones_per_minute"`
	Daily                DailyStats    `json:"daily"`

	// CurrentSessionStart is zero when no session is active
	CurrentSessionStart time.Time `json:"-"`
	sessionBase         Counters
}

// Active reports whether a session is running
func (m *Metrics) Active() bool {
	return !m.CurrentSessionStart.IsZero()
}

// StartSession opens a session at now and returns its transient state.
// Starting while a session is active folds the old one first.
func (m *Metrics) StartSession(now time.Time) Session {
	if m.Active() {
		m.EndSession(now)
	}
	m.SessionsCount++
	m.CurrentSessionStart = now
	m.sessionBase = m.Counters
	return Session{Start: now, Base: m.sessionBase}
}

// Attach restores a session kept outside the persisted record
func (m *Metrics) Attach(s Session) {
	m.CurrentSessionStart = s.Start
	m.sessionBase = s.Base
}

// EndSession folds the session's elapsed time into the totals. It is a
// no-op when no session is active and reports whether it did anything.
func (m *Metrics) EndSession(now time.Time) bool {
	if !m.Active() {
		return false
	}

	elapsed := now.Sub(m.CurrentSessionStart)
	if elapsed < 0 {
		elapsed = 0
	}
	m.TotalSessionTime += elapsed
	if m.SessionsCount > 0 {
		m.AverageSessionLength = m.TotalSessionTime / time.Duration(m.SessionsCount)
	}
	m.ZonesPerMinute = perMinute(m.ZonesCleared, m.TotalSessionTime)

	m.CurrentSessionStart = time.Time{}
	m.sessionBase = Counters{}
	return true
}

// Rates derives per-minute rates: over the active session when one is
// running, otherwise over all recorded session time. Zero elapsed time
// yields zero rates.
func (m *Metrics) Rates(now time.Time) Rates {
	counters := m.Counters
	elapsed := m.TotalSessionTime
	if m.Active() {
		counters = m.Counters.sub(m.sessionBase)
		elapsed = now.Sub(m.CurrentSessionStart)
	}

	return Rates{
		GoldPerMinute:  perMinute(counters.GoldEarned, elapsed),
		XPPerMinute:    perMinute(counters.XPGained, elapsed),
		ZonesPerMinute: perMinute(counters.ZonesCleared, elapsed),
		Elapsed:        max(elapsed, 0),
	}
}

func perMinute(count int64, elapsed time.Duration) float64 {
	minutes := elapsed.Minutes()
	if minutes <= 0 {
		return 0
	}
	return float64(count) / minutes
}

// Roll starts a new daily bucket when now is on a different calendar day
func (m *Metrics) Roll(now time.Time) bool {
	today := clock.Date(now)
	if m.Daily.Date == today {
		return false
	}
	m.Daily = DailyStats{Date: today}
	return true
}

// RecordZoneCleared counts a zone clear
func (m *Metrics) RecordZoneCleared() {
	m.ZonesCleared++
	m.Daily.ZonesCleared++
}

// RecordKills counts monster kills
func (m *Metrics) RecordKills(n int64) {
	if n <= 0 {
		return
	}
	m.MonstersKilled += n
	m.Daily.MonstersKilled += n
}

// RecordGold counts gold earned; spending is not tracked here
func (m *Metrics) RecordGold(amount int64) {
	if amount <= 0 {
		return
	}
	m.GoldEarned += amount
	m.Daily.GoldEarned += amount
}

// RecordXP counts experience gained
func (m *Metrics) RecordXP(amount int64) {
	if amount <= 0 {
		return
	}
	m.XPGained += amount
	m.Daily.XPGained += amount
}

// RecordCraft counts a crafted item
func (m *Metrics) RecordCraft() {
	m.ItemsCrafted++
	m.Daily.ItemsCrafted++
}

// RecordQuestCompleted counts a claimed quest
func (m *Metrics) RecordQuestCompleted() {
	m.QuestsCompleted++
	m.Daily.QuestsCompleted++
}

// RecordPrestige counts a prestige
func (m *Metrics) RecordPrestige() {
	m.PrestigeCount++
	m.Daily.PrestigeCount++
}
