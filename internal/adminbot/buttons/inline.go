package buttons

const (
	//dashboard
	DashboardRefreshId = "DASHBOARD_REFRESH"
	DashboardAutoOnId  = "DASHBOARD_AUTO_ON"
	DashboardAutoOffId = "DASHBOARD_AUTO_OFF"
	DashboardCloseId   = "DASHBOARD_CLOSE"

	//users list
	NextPageUsers      = "NEXT_PAGE_USERS"
	BackPageUsers      = "BACK_PAGE_USERS"
	CloseListUsers     = "CLOSE_LIST_USERS"
	UserDataButton     = "USER_DATA"
	UsersFilterAllId   = "USERS_FILTER_ALL"
	UsersFilterBanId   = "USERS_FILTER_BANNED"
	UsersSearchId      = "USERS_SEARCH"
	UsersExportCsvId   = "USERS_EXPORT_CSV"

	//user card
	UserBanId        = "USER_BAN"
	UserUnbanId      = "USER_UNBAN"
	UserAdjustId     = "USER_ADJUST"
	UserTxId         = "USER_TX"
	UserInviteTreeId = "USER_INVITE_TREE"

	//adjust balance wizard
	AdjustCurrencyId = "ADJUST_CUR"
	AdjustCancelId   = "ADJUST_CANCEL"

	//batch operations
	BatchOpId        = "BATCH_OP"
	BatchConfirmId   = "BATCH_CONFIRM"
	BatchCancelId    = "BATCH_CANCEL"
	UsersBatchId     = "USERS_BATCH"

	//red packets
	NextPageRp     = "NEXT_PAGE_RP"
	BackPageRp     = "BACK_PAGE_RP"
	CloseListRp    = "CLOSE_LIST_RP"
	RpDataButton   = "RP_DATA"
	RpFilterId     = "RP_FILTER"
	RpStatsId      = "RP_STATS"
	RpRefundId     = "RP_REFUND"
	RpExtendId     = "RP_EXTEND"
	RpCompleteId   = "RP_COMPLETE"
	RpDeleteId     = "RP_DELETE"
	RpDeleteOkId   = "RP_DELETE_OK"

	//transactions
	NextPageTx    = "NEXT_PAGE_TX"
	BackPageTx    = "BACK_PAGE_TX"
	CloseListTx   = "CLOSE_LIST_TX"
	TxStatsId     = "TX_STATS"
	TxExportCsvId = "TX_EXPORT_CSV"
	TxFilterCurId = "TX_FILTER_CUR"

	//analytics
	CheckinRecordsId = "CHECKIN_RECORDS"
	InviteRecordsId  = "INVITE_RECORDS"
	InviteTreeAskId  = "INVITE_TREE_ASK"
	NextPageCheckin  = "NEXT_PAGE_CHECKIN"
	BackPageCheckin  = "BACK_PAGE_CHECKIN"
	CloseListCheckin = "CLOSE_LIST_CHECKIN"
	NextPageInvite   = "NEXT_PAGE_INVITE"
	BackPageInvite   = "BACK_PAGE_INVITE"
	CloseListInvite  = "CLOSE_LIST_INVITE"

	//telegram
	TgGroupsId       = "TG_GROUPS"
	TgTemplatesId    = "TG_TEMPLATES"
	TgMessagesId     = "TG_MESSAGES"
	TgSendId         = "TG_SEND"
	NextPageGroups   = "NEXT_PAGE_GROUPS"
	BackPageGroups   = "BACK_PAGE_GROUPS"
	CloseListGroups  = "CLOSE_LIST_GROUPS"
	GroupToggleId    = "GROUP_TOGGLE"
	NextPageTpl      = "NEXT_PAGE_TPL"
	BackPageTpl      = "BACK_PAGE_TPL"
	CloseListTpl     = "CLOSE_LIST_TPL"
	TplToggleId      = "TPL_TOGGLE"
	TplViewButton    = "TPL_VIEW"
	TplCreateId      = "TPL_CREATE"
	TplEditId        = "TPL_EDIT"
	NextPageTgMsg    = "NEXT_PAGE_TG_MSG"
	BackPageTgMsg    = "BACK_PAGE_TG_MSG"
	CloseListTgMsg   = "CLOSE_LIST_TG_MSG"
	SendConfirmId    = "SEND_CONFIRM"
	SendCancelId     = "SEND_CANCEL"

	//reports
	ReportGenId      = "REPORT_GEN"
	ReportDlButton   = "REPORT_DL"
	NextPageReports  = "NEXT_PAGE_REPORTS"
	BackPageReports  = "BACK_PAGE_REPORTS"
	CloseListReports = "CLOSE_LIST_REPORTS"

	//security
	SecAlertsId    = "SEC_ALERTS"
	SecDevicesId   = "SEC_DEVICES"
	SecIpsId       = "SEC_IPS"
	SecRiskId      = "SEC_RISK"
	SecLiquidityId = "SEC_LIQUIDITY"

	NextPageAlerts  = "NEXT_PAGE_ALERTS"
	BackPageAlerts  = "BACK_PAGE_ALERTS"
	CloseListAlerts = "CLOSE_LIST_ALERTS"
	AlertResolveId  = "ALERT_RESOLVE"
	AlertDismissId  = "ALERT_DISMISS"
	AlertEscalateId = "ALERT_ESCALATE"

	NextPageDevices  = "NEXT_PAGE_DEVICES"
	BackPageDevices  = "BACK_PAGE_DEVICES"
	CloseListDevices = "CLOSE_LIST_DEVICES"
	DeviceBlockId    = "DEV_BLOCK"
	DeviceUnblockId  = "DEV_UNBLOCK"
	DeviceTrustId    = "DEV_TRUST"

	NextPageIps  = "NEXT_PAGE_IPS"
	BackPageIps  = "BACK_PAGE_IPS"
	CloseListIps = "CLOSE_LIST_IPS"
	IpBlockId    = "IP_BLOCK"
	IpUnblockId  = "IP_UNBLOCK"

	NextPageRisk  = "NEXT_PAGE_RISK"
	BackPageRisk  = "BACK_PAGE_RISK"
	CloseListRisk = "CLOSE_LIST_RISK"

	NextPageLiq   = "NEXT_PAGE_LIQ"
	BackPageLiq   = "BACK_PAGE_LIQ"
	CloseListLiq  = "CLOSE_LIST_LIQ"
	LiqDataButton = "LIQ_DATA"
	LiqFilterId   = "LIQ_FILTER"
	LiqAdjustId   = "LIQ_ADJUST"
	LiqStatusId   = "LIQ_STATUS"
	LiqCancelId   = "LIQ_CANCEL"

	//settings
	ThemeLightId = "THEME_LIGHT"
	ThemeDarkId  = "THEME_DARK"
	LogoutId     = "LOGOUT"

	//default
	DefCloseId = "DEF_CLOSE"
)
