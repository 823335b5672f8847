package models

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Admin Admin  `json:"admin"`
}

type AdjustBalanceRequest struct {
	UserId   uint64  `json:"user_id"`
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
	Reason   string  `json:"reason"`
}

type BanRequest struct {
	UserId uint64 `json:"user_id"`
	Banned bool   `json:"banned"`
	Reason string `json:"reason,omitempty"`
}

type BatchOperationRequest struct {
	UserIds   []uint64 `json:"user_ids"`
	Operation string   `json:"operation"`
}

type ExtendRequest struct {
	Hours int `json:"hours"`
}

type SendMessageRequest struct {
	ChatId     int64  `json:"chat_id"`
	TemplateId uint64 `json:"template_id,omitempty"`
	Text       string `json:"text,omitempty"`
}

type ResolveIdRequest struct {
	Username string `json:"username"`
}

type ResolveIdResponse struct {
	ChatId int64 `json:"chat_id"`
}

type TemplateRequest struct {
	Name     string `json:"name"`
	Content  string `json:"content"`
	IsActive bool   `json:"is_active"`
}

type GenerateReportRequest struct {
	ReportType string `json:"report_type"`
	DateFrom   string `json:"date_from,omitempty"`
	DateTo     string `json:"date_to,omitempty"`
}

type AlertActionRequest struct {
	Action string `json:"action"`
	Note   string `json:"note,omitempty"`
}

type DeviceActionRequest struct {
	Action string `json:"action"`
}

type IpActionRequest struct {
	Action string `json:"action"`
}

type LiquidityAdjustRequest struct {
	EntryId   uint64 `json:"entry_id"`
	NewStatus string `json:"new_status"`
	Reason    string `json:"reason"`
}
