package pricing

// BreakdownResponse is a Breakdown rounded to cents for display.
type BreakdownResponse struct {
	NightlyRate string `json:"nightlyRate"`
	Nights      int    `json:"nights"`
	Subtotal    string `json:"subtotal"`
	ServiceFee  string `json:"serviceFee"`
	Taxes       string `json:"taxes,omitempty"`
	Total       string `json:"total"`
}

func (r *BreakdownResponse) FromBreakdown(b Breakdown) {
	r.NightlyRate = b.NightlyRate.StringFixed(2)
	r.Nights = b.Nights
	r.Subtotal = b.Subtotal.StringFixed(2)
	r.ServiceFee = b.ServiceFee.StringFixed(2)
	r.Total = b.Total.StringFixed(2)

	if !b.Taxes.IsZero() {
		r.Taxes = b.Taxes.StringFixed(2)
	}
}
