package models

// FinancialSeries is monthly revenue and cost in millions of MXN.
type FinancialSeries struct {
	Months  []string  `json:"months"`
	Revenue []float64 `json:"revenue"`
	Costs   []float64 `json:"costs"`
}

// EBITDA returns revenue minus costs for month i.
func (f FinancialSeries) EBITDA(i int) float64 {
	return f.Revenue[i] - f.Costs[i]
}

// Margin returns the EBITDA margin of month i as a percentage. A month
// without revenue has a zero margin.
func (f FinancialSeries) Margin(i int) float64 {
	if f.Revenue[i] == 0 {
		return 0
	}
	return f.EBITDA(i) / f.Revenue[i] * 100
}

// Margins returns the EBITDA margin for every month.
func (f FinancialSeries) Margins() []float64 {
	margins := make([]float64, len(f.Revenue))
	for i := range f.Revenue {
		margins[i] = f.Margin(i)
	}
	return margins
}

// FinancialSummary is a headline card on the financial tab.
type FinancialSummary struct {
	Label  string  `json:"label"`
	Value  string  `json:"value"`
	Change float64 `json:"change"`
	Period string  `json:"period"`
	Color  string  `json:"color"`
}
