package analytics_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-idle/internal/analytics"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestMetrics_ZeroLengthSessionIsDefined(t *testing.T) {
	var m analytics.Metrics

	m.StartSession(t0)
	rates := m.Rates(t0)
	assert.Zero(t, rates.GoldPerMinute)
	assert.Zero(t, rates.ZonesPerMinute)

	require.True(t, m.EndSession(t0))
	assert.Equal(t, time.Duration(0), m.AverageSessionLength)
	assert.False(t, math.IsNaN(m.ZonesPerMinute))
	assert.False(t, math.IsInf(m.ZonesPerMinute, 0))
	assert.Zero(t, m.ZonesPerMinute)

	rates = m.Rates(t0)
	assert.False(t, math.IsNaN(rates.XPPerMinute))
	assert.Zero(t, rates.XPPerMinute)
}

func TestMetrics_EndSessionWithoutSessionIsNoop(t *testing.T) {
	var m analytics.Metrics
	assert.False(t, m.EndSession(t0))
	assert.Equal(t, analytics.Metrics{}, m)

	m.StartSession(t0)
	require.True(t, m.EndSession(t0.Add(time.Minute)))
	assert.False(t, m.EndSession(t0.Add(2*time.Minute)))
	assert.Equal(t, time.Minute, m.TotalSessionTime)
}

func TestMetrics_SessionLifecycle(t *testing.T) {
	var m analytics.Metrics

	m.StartSession(t0)
	assert.True(t, m.Active())
	assert.Equal(t, int64(1), m.SessionsCount)

	m.RecordGold(300)
	m.RecordXP(60)
	m.RecordZoneCleared()
	m.RecordZoneCleared()

	rates := m.Rates(t0.Add(2 * time.Minute))
	assert.InDelta(t, 150, rates.GoldPerMinute, 1e-9)
	assert.InDelta(t, 30, rates.XPPerMinute, 1e-9)
	assert.InDelta(t, 1, rates.ZonesPerMinute, 1e-9)

	require.True(t, m.EndSession(t0.Add(4*time.Minute)))
	assert.False(t, m.Active())
	assert.Equal(t, 4*time.Minute, m.TotalSessionTime)
	assert.Equal(t, 4*time.Minute, m.AverageSessionLength)
	assert.InDelta(t, 0.5, m.ZonesPerMinute, 1e-9)

	m.StartSession(t0.Add(time.Hour))
	m.RecordGold(10)
	rates = m.Rates(t0.Add(time.Hour + time.Minute))
	assert.InDelta(t, 10, rates.GoldPerMinute, 1e-9, "session rates only count this session")

	require.True(t, m.EndSession(t0.Add(time.Hour+2*time.Minute)))
	assert.Equal(t, int64(2), m.SessionsCount)
	assert.Equal(t, 3*time.Minute, m.AverageSessionLength)
}

func TestMetrics_StartWhileActiveFoldsPrevious(t *testing.T) {
	var m analytics.Metrics
	m.StartSession(t0)
	m.StartSession(t0.Add(5 * time.Minute))

	assert.Equal(t, int64(2), m.SessionsCount)
	assert.Equal(t, 5*time.Minute, m.TotalSessionTime)
	assert.Equal(t, t0.Add(5*time.Minute), m.CurrentSessionStart)
}

func TestMetrics_SessionStartIsNotPersisted(t *testing.T) {
	var m analytics.Metrics
	session := m.StartSession(t0)
	m.RecordKills(3)

	data, err := json.Marshal(&m)
	require.NoError(t, err)

	var loaded analytics.Metrics
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.False(t, loaded.Active())
	assert.Equal(t, int64(3), loaded.MonstersKilled)
	assert.Equal(t, int64(1), loaded.SessionsCount)

	loaded.Attach(session)
	assert.True(t, loaded.Active())
	require.True(t, loaded.EndSession(t0.Add(time.Minute)))
	assert.Equal(t, time.Minute, loaded.TotalSessionTime)
}

func TestMetrics_RecordIgnoresNonPositive(t *testing.T) {
	var m analytics.Metrics
	m.RecordGold(-5)
	m.RecordXP(0)
	m.RecordKills(-1)
	assert.Equal(t, analytics.Counters{}, m.Counters)
}

func TestMetrics_DailyRollover(t *testing.T) {
	var m analytics.Metrics

	assert.True(t, m.Roll(t0))
	m.RecordKills(4)
	m.RecordCraft()
	m.RecordQuestCompleted()
	m.RecordPrestige()

	assert.False(t, m.Roll(t0.Add(6*time.Hour)))
	assert.Equal(t, int64(4), m.Daily.MonstersKilled)
	assert.Equal(t, "2024-05-01", m.Daily.Date)

	assert.True(t, m.Roll(t0.Add(24*time.Hour)))
	assert.Equal(t, "2024-05-02", m.Daily.Date)
	assert.Zero(t, m.Daily.MonstersKilled)
	assert.Equal(t, int64(4), m.MonstersKilled, "lifetime counters survive")
	assert.Equal(t, int64(1), m.ItemsCrafted)
	assert.Equal(t, int64(1), m.QuestsCompleted)
	assert.Equal(t, int64(1), m.PrestigeCount)
}
