package models

import (
	"fmt"
	"strconv"
)

// Filters build both the query string of a list request and the cache key
// params, so a screen and the cache always agree on what was asked.

type PageFilter struct {
	Page     int
	PageSize int
}

func (f PageFilter) Params() map[string]string {
	return map[string]string{
		"page":      strconv.Itoa(f.Page),
		"page_size": strconv.Itoa(f.PageSize),
	}
}

type UserFilter struct {
	PageFilter
	Search   string
	IsBanned *bool
	Level    int
}

func (f UserFilter) Params() map[string]string {
	params := f.PageFilter.Params()
	if f.Search != "" {
		params["search"] = f.Search
	}
	if f.IsBanned != nil {
		params["is_banned"] = strconv.FormatBool(*f.IsBanned)
	}
	if f.Level > 0 {
		params["level"] = strconv.Itoa(f.Level)
	}
	return params
}

type RedPacketFilter struct {
	PageFilter
	Status     string
	PacketType string
	Currency   string
	SenderId   uint64
}

func (f RedPacketFilter) Params() map[string]string {
	params := f.PageFilter.Params()
	if f.Status != "" {
		params["status"] = f.Status
	}
	if f.PacketType != "" {
		params["packet_type"] = f.PacketType
	}
	if f.Currency != "" {
		params["currency"] = f.Currency
	}
	if f.SenderId > 0 {
		params["sender_id"] = fmt.Sprint(f.SenderId)
	}
	return params
}

type TransactionFilter struct {
	PageFilter
	UserId   uint64
	Type     string
	Currency string
	DateFrom string
	DateTo   string
}

func (f TransactionFilter) Params() map[string]string {
	params := f.PageFilter.Params()
	if f.UserId > 0 {
		params["user_id"] = fmt.Sprint(f.UserId)
	}
	if f.Type != "" {
		params["type"] = f.Type
	}
	if f.Currency != "" {
		params["currency"] = f.Currency
	}
	if f.DateFrom != "" {
		params["date_from"] = f.DateFrom
	}
	if f.DateTo != "" {
		params["date_to"] = f.DateTo
	}
	return params
}

type AlertFilter struct {
	PageFilter
	RiskLevel string
	Resolved  *bool
}

func (f AlertFilter) Params() map[string]string {
	params := f.PageFilter.Params()
	if f.RiskLevel != "" {
		params["risk_level"] = f.RiskLevel
	}
	if f.Resolved != nil {
		params["resolved"] = strconv.FormatBool(*f.Resolved)
	}
	return params
}

type LiquidityFilter struct {
	PageFilter
	Status   string
	Currency string
	UserId   uint64
}

func (f LiquidityFilter) Params() map[string]string {
	params := f.PageFilter.Params()
	if f.Status != "" {
		params["status"] = f.Status
	}
	if f.Currency != "" {
		params["currency"] = f.Currency
	}
	if f.UserId > 0 {
		params["user_id"] = fmt.Sprint(f.UserId)
	}
	return params
}

type DeviceFilter struct {
	PageFilter
	Blocked *bool
}

func (f DeviceFilter) Params() map[string]string {
	params := f.PageFilter.Params()
	if f.Blocked != nil {
		params["is_blocked"] = strconv.FormatBool(*f.Blocked)
	}
	return params
}

type IpSessionFilter struct {
	PageFilter
	Blocked *bool
}

func (f IpSessionFilter) Params() map[string]string {
	params := f.PageFilter.Params()
	if f.Blocked != nil {
		params["is_blocked"] = strconv.FormatBool(*f.Blocked)
	}
	return params
}

type TrendFilter struct {
	Days int
}

func (f TrendFilter) Params() map[string]string {
	days := f.Days
	if days <= 0 {
		days = 7
	}
	return map[string]string{"days": strconv.Itoa(days)}
}
