package cache

import "redadmin/internal/config"

var log = config.InitLogger()

// Domain tags. Every keyed read belongs to exactly one.
const (
	TagDashboard        = "dashboard"
	TagUsers            = "users"
	TagRedPackets       = "redpackets"
	TagRedPacketStats   = "redpackets:stats"
	TagTransactions     = "transactions"
	TagTransactionStats = "transactions:stats"
	TagCheckin          = "checkin"
	TagInvite           = "invite"
	TagTelegramGroups   = "telegram:groups"
	TagTelegramMessages = "telegram:messages"
	TagTemplates        = "telegram:templates"
	TagReports          = "reports"
	TagSecurityStats    = "security:stats"
	TagAlerts           = "security:alerts"
	TagDevices          = "security:devices"
	TagIpSessions       = "security:ip"
	TagRiskUsers        = "security:risk"
	TagLiquidityEntries = "liquidity:entries"
	TagLiquidityStats   = "liquidity:stats"
)

// MutationTags maps every mutation to the tags it invalidates. One static
// table so invalidation coverage can be audited and tested away from the
// screens that trigger it. Invalidation is coarse: an adjusted balance drops
// every cached user page, whatever filters they were fetched under.
var MutationTags = map[string][]string{
	"users.adjust-balance": {TagUsers, TagTransactions, TagDashboard},
	"users.ban":            {TagUsers},
	"users.batch":          {TagUsers},

	"redpackets.refund":   {TagRedPackets, TagRedPacketStats, TagTransactions, TagDashboard},
	"redpackets.extend":   {TagRedPackets},
	"redpackets.complete": {TagRedPackets, TagRedPacketStats, TagDashboard},
	"redpackets.delete":   {TagRedPackets, TagRedPacketStats, TagDashboard},

	"telegram.group":    {TagTelegramGroups},
	"telegram.template": {TagTemplates},
	"telegram.send":     {TagTelegramMessages, TagTemplates},

	"reports.generate": {TagReports},

	"alerts.action":    {TagAlerts, TagSecurityStats, TagDashboard},
	"devices.action":   {TagDevices, TagSecurityStats},
	"ip.action":        {TagIpSessions, TagSecurityStats},
	"liquidity.adjust": {TagLiquidityEntries, TagLiquidityStats},
}
