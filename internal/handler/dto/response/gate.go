package response

import (
	"time"

	"goalkick/internal/usecase/commands"
	"goalkick/internal/usecase/queries"
)

type RedemptionResponse struct {
	Outcome   string     `json:"outcome"`
	Admit     bool       `json:"admit"`
	Code      string     `json:"code"`
	Message   string     `json:"message"`
	Status    string     `json:"status,omitempty"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	Match     string     `json:"match,omitempty"`
	Venue     string     `json:"venue,omitempty"`
	StartTime *time.Time `json:"start_time,omitempty"`
	Quantity  int        `json:"quantity,omitempty"`
	BuyerName string     `json:"buyer_name,omitempty"`
}

func FromRedemptionResult(r *commands.RedemptionResult) *RedemptionResponse {
	res := &RedemptionResponse{
		Outcome:   r.Outcome.String(),
		Admit:     r.Outcome.Admits(),
		Code:      r.Code,
		Message:   r.Message,
		UsedAt:    r.UsedAt,
		Match:     r.MatchLabel,
		Venue:     r.Venue,
		Quantity:  r.Quantity,
		BuyerName: r.BuyerName,
	}
	if r.Status != "" {
		res.Status = r.Status.String()
	}
	if !r.StartTime.IsZero() {
		st := r.StartTime
		res.StartTime = &st
	}
	return res
}

type CodeCheckResponse = queries.CodeCheck
