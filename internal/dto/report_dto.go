package dto

type CreateReportRequest struct {
	EntryID uint   `json:"entry_id"`
	Reason  string `json:"reason"`
	Details string `json:"details"`
}

type ActionReportRequest struct {
	Status    string `json:"status"`
	AdminNote string `json:"admin_note"`
}
