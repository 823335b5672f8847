package models

import (
	"time"
)

const (
	PacketStatusActive    = "active"
	PacketStatusCompleted = "completed"
	PacketStatusExpired   = "expired"
	PacketStatusRefunded  = "refunded"

	PacketTypeRandom    = "random"
	PacketTypeEqual     = "equal"
	PacketTypeExclusive = "exclusive"

	CurrencyUsdt   = "usdt"
	CurrencyTon    = "ton"
	CurrencyStars  = "stars"
	CurrencyPoints = "points"

	LiquidityLocked       = "locked"
	LiquidityCooldown     = "cooldown"
	LiquidityWithdrawable = "withdrawable"

	RiskLow      = "low"
	RiskMedium   = "medium"
	RiskHigh     = "high"
	RiskCritical = "critical"
)

type Admin struct {
	Id       uint64 `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type User struct {
	Id            uint64    `json:"id"`
	TelegramId    int64     `json:"telegram_id"`
	Username      string    `json:"username"`
	UsdtBalance   float64   `json:"usdt_balance"`
	TonBalance    float64   `json:"ton_balance"`
	StarsBalance  float64   `json:"stars_balance"`
	PointsBalance int64     `json:"points_balance"`
	Level         int       `json:"level"`
	IsBanned      bool      `json:"is_banned"`
	WalletAddress string    `json:"wallet_address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	LastActiveAt  time.Time `json:"last_active_at"`
}

type RedPacket struct {
	Uuid           string     `json:"uuid"`
	SenderId       uint64     `json:"sender_id"`
	SenderUsername string     `json:"sender_username"`
	ChatId         int64      `json:"chat_id,omitempty"`
	ChatTitle      string     `json:"chat_title,omitempty"`
	Currency       string     `json:"currency"`
	PacketType     string     `json:"packet_type"`
	TotalAmount    float64    `json:"total_amount"`
	TotalCount     int        `json:"total_count"`
	ClaimedAmount  float64    `json:"claimed_amount"`
	ClaimedCount   int        `json:"claimed_count"`
	Status         string     `json:"status"`
	Greeting       string     `json:"greeting,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
}

type Transaction struct {
	Id            uint64    `json:"id"`
	UserId        uint64    `json:"user_id"`
	Username      string    `json:"username,omitempty"`
	Type          string    `json:"type"`
	Currency      string    `json:"currency"`
	Amount        float64   `json:"amount"`
	BalanceBefore *float64  `json:"balance_before,omitempty"`
	BalanceAfter  *float64  `json:"balance_after,omitempty"`
	ReferenceId   string    `json:"reference_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type LiquidityEntry struct {
	Id                 uint64     `json:"id"`
	UserId             uint64     `json:"user_id"`
	Username           string     `json:"username,omitempty"`
	Currency           string     `json:"currency"`
	Amount             float64    `json:"amount"`
	WithdrawableStatus string     `json:"withdrawable_status"`
	TurnoverRequired   float64    `json:"turnover_required"`
	TurnoverCompleted  float64    `json:"turnover_completed"`
	UnlockAt           *time.Time `json:"unlock_at,omitempty"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type Alert struct {
	Id             uint64     `json:"id"`
	UserId         uint64     `json:"user_id,omitempty"`
	AlertType      string     `json:"alert_type"`
	RiskLevel      string     `json:"risk_level"`
	Description    string     `json:"description"`
	IsResolved     bool       `json:"is_resolved"`
	ResolvedBy     string     `json:"resolved_by,omitempty"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
	ResolutionNote string     `json:"resolution_note,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type Device struct {
	Id         uint64    `json:"id"`
	DeviceHash string    `json:"device_hash"`
	Platform   string    `json:"platform,omitempty"`
	UserCount  int       `json:"user_count"`
	IsBlocked  bool      `json:"is_blocked"`
	IsTrusted  bool      `json:"is_trusted"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

type IPSession struct {
	Id          uint64    `json:"id"`
	Ip          string    `json:"ip"`
	Country     string    `json:"country,omitempty"`
	UserCount   int       `json:"user_count"`
	IsBlocked   bool      `json:"is_blocked"`
	RiskScore   float64   `json:"risk_score"`
	FirstSeenAt time.Time `json:"first_seen_at"`
	LastSeenAt  time.Time `json:"last_seen_at"`
}

type RiskUser struct {
	UserId    uint64   `json:"user_id"`
	Username  string   `json:"username,omitempty"`
	RiskScore float64  `json:"risk_score"`
	RiskLevel string   `json:"risk_level"`
	Reasons   []string `json:"reasons,omitempty"`
}

type MessageTemplate struct {
	Id         uint64    `json:"id"`
	Name       string    `json:"name"`
	Content    string    `json:"content"`
	UsageCount int       `json:"usage_count"`
	IsActive   bool      `json:"is_active"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type TelegramGroup struct {
	Id          uint64    `json:"id"`
	ChatId      int64     `json:"chat_id"`
	Title       string    `json:"title"`
	MemberCount int       `json:"member_count"`
	IsEnabled   bool      `json:"is_enabled"`
	CreatedAt   time.Time `json:"created_at"`
}

type TelegramMessage struct {
	Id        uint64    `json:"id"`
	ChatId    int64     `json:"chat_id"`
	ChatTitle string    `json:"chat_title,omitempty"`
	Text      string    `json:"text"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Report struct {
	Id          uint64    `json:"id"`
	ReportType  string    `json:"report_type"`
	Status      string    `json:"status"`
	FileName    string    `json:"file_name,omitempty"`
	PeriodStart string    `json:"period_start,omitempty"`
	PeriodEnd   string    `json:"period_end,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CheckinRecord struct {
	Id           uint64    `json:"id"`
	UserId       uint64    `json:"user_id"`
	Username     string    `json:"username,omitempty"`
	Day          int       `json:"day"`
	RewardPoints int64     `json:"reward_points"`
	CreatedAt    time.Time `json:"created_at"`
}

type InviteRecord struct {
	Id              uint64    `json:"id"`
	InviterId       uint64    `json:"inviter_id"`
	InviterUsername string    `json:"inviter_username,omitempty"`
	InviteeId       uint64    `json:"invitee_id"`
	InviteeUsername string    `json:"invitee_username,omitempty"`
	RewardPoints    int64     `json:"reward_points"`
	CreatedAt       time.Time `json:"created_at"`
}

type InviteTreeNode struct {
	UserId   uint64           `json:"user_id"`
	Username string           `json:"username,omitempty"`
	Level    int              `json:"level"`
	Children []InviteTreeNode `json:"children,omitempty"`
}
