package userstate

var CurrentState = make(map[int64]int)

const (
	EnterLogin int = iota
	EnterPassword

	//users
	EnterUserSearch
	EnterAdjustAmount
	EnterAdjustReason
	EnterBanReason
	EnterBatchIds

	//red packets
	EnterExtendHours

	//analytics
	EnterTreeUserId

	//telegram
	EnterSendTarget
	EnterSendText
	EnterTplName
	EnterTplContent

	//reports
	EnterReportPeriod

	//security
	EnterAlertNote
	EnterLiquidityReason
)

func ResetState(chatId int64) {
	delete(CurrentState, chatId)
}
