package models

import "encoding/json"

// Page is the list envelope every list endpoint returns. Some endpoints name
// the slice "items", older ones name it "data".
type Page[T any] struct {
	Items []T
	Total int64
}

func (p *Page[T]) UnmarshalJSON(b []byte) error {
	var raw struct {
		Items []T   `json:"items"`
		Data  []T   `json:"data"`
		Total int64 `json:"total"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	p.Items = raw.Items
	if p.Items == nil {
		p.Items = raw.Data
	}
	if p.Items == nil {
		p.Items = make([]T, 0)
	}
	p.Total = raw.Total
	return nil
}

type MutationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
	Count int64   `json:"count"`
}

type DashboardStats struct {
	TotalUsers       int64   `json:"total_users"`
	ActiveUsers24h   int64   `json:"active_users_24h"`
	TotalPackets     int64   `json:"total_packets"`
	ActivePackets    int64   `json:"active_packets"`
	VolumeUsdt24h    float64 `json:"volume_usdt_24h"`
	UnresolvedAlerts int64   `json:"unresolved_alerts"`
}

type RedPacketStats struct {
	Total         int64   `json:"total"`
	Active        int64   `json:"active"`
	Completed     int64   `json:"completed"`
	Expired       int64   `json:"expired"`
	Refunded      int64   `json:"refunded"`
	TotalAmount   float64 `json:"total_amount"`
	ClaimedAmount float64 `json:"claimed_amount"`
}

type TransactionStats struct {
	TotalCount int64              `json:"total_count"`
	TotalIn    map[string]float64 `json:"total_in"`
	TotalOut   map[string]float64 `json:"total_out"`
}

type CheckinStats struct {
	TodayCount   int64 `json:"today_count"`
	TotalCount   int64 `json:"total_count"`
	UniqueUsers  int64 `json:"unique_users"`
	MaxStreakDay int   `json:"max_streak_day"`
}

type CheckinConfig struct {
	DailyRewards []int64 `json:"daily_rewards"`
	CycleDays    int     `json:"cycle_days"`
	ResetOnMiss  bool    `json:"reset_on_miss"`
}

type InviteStats struct {
	TotalInvites int64 `json:"total_invites"`
	TotalRewards int64 `json:"total_rewards"`
	Inviters     int64 `json:"inviters"`
}

type SecurityStats struct {
	UnresolvedAlerts int64 `json:"unresolved_alerts"`
	CriticalAlerts   int64 `json:"critical_alerts"`
	BlockedDevices   int64 `json:"blocked_devices"`
	BlockedIps       int64 `json:"blocked_ips"`
	RiskUsers        int64 `json:"risk_users"`
}

type IpStats struct {
	TotalIps        int64 `json:"total_ips"`
	BlockedIps      int64 `json:"blocked_ips"`
	MultiAccountIps int64 `json:"multi_account_ips"`
}

type LiquidityStats struct {
	LockedCount        int64   `json:"locked_count"`
	CooldownCount      int64   `json:"cooldown_count"`
	WithdrawableCount  int64   `json:"withdrawable_count"`
	LockedAmount       float64 `json:"locked_amount"`
	CooldownAmount     float64 `json:"cooldown_amount"`
	WithdrawableAmount float64 `json:"withdrawable_amount"`
}
