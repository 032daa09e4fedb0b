package plan

import "time"

// Input is one simulation request.
type Input struct {
	Type  string `json:"type"`
	Seats int    `json:"seats"`
	ATV   int    `json:"atv"`
	Hours string `json:"hours"`
	Area  string `json:"area"`
}

type MenuExample struct {
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}

// Result is the full calculator output. The first block is persisted
// with the plan row, the second is derived on every calculation and
// never stored.
type Result struct {
	Turnover      float64
	DailyGuests   int
	MonthlySales  int
	CogsRate      float64
	Cogs          int
	GrossProfit   int
	LaborCost     int
	FixedCost     int
	OpIncome      int
	PaybackMonths int
	Concept       string
	Action        string

	CatchCopy         string
	TargetAudience    string
	MenuExamples      []MenuExample
	SNSStrategy       string
	StaffCount        int
	PeakOperation     string
	InitialInvestment int
	OpeningCost       int
	FundingMethods    []string
	SeatOccupancyRate float64
}

// Plan is the persisted row: the input echo plus the stored subset of
// the calculation.
type Plan struct {
	ID    int64  `json:"id"`
	Type  string `json:"type"`
	Seats int    `json:"seats"`
	ATV   int    `json:"atv"`
	Hours string `json:"hours"`
	Area  string `json:"area"`

	Turnover      float64 `json:"turnover"`
	DailyGuests   int     `json:"daily_guests"`
	MonthlySales  int     `json:"monthly_sales"`
	CogsRate      float64 `json:"cogs_rate"`
	Cogs          int     `json:"cogs"`
	GrossProfit   int     `json:"gross_profit"`
	LaborCost     int     `json:"labor_cost"`
	FixedCost     int     `json:"fixed_cost"`
	OpIncome      int     `json:"op_income"`
	PaybackMonths int     `json:"payback_months"`
	Concept       string  `json:"concept"`
	Action        string  `json:"action"`

	CreatedAt time.Time `json:"created_at"`
}

// Detail is the create response: the persisted row merged with the
// derived-only fields of the same calculation. Fetching a plan later
// returns a bare Plan, so these fields are omitted when empty.
type Detail struct {
	Plan

	CatchCopy         string        `json:"catch_copy,omitempty"`
	TargetAudience    string        `json:"target_audience,omitempty"`
	MenuExamples      []MenuExample `json:"menu_examples,omitempty"`
	SNSStrategy       string        `json:"sns_strategy,omitempty"`
	StaffCount        int           `json:"staff_count,omitempty"`
	PeakOperation     string        `json:"peak_operation,omitempty"`
	InitialInvestment int           `json:"initial_investment,omitempty"`
	OpeningCost       int           `json:"opening_cost,omitempty"`
	FundingMethods    []string      `json:"funding_methods,omitempty"`
	SeatOccupancyRate float64       `json:"seat_occupancy_rate,omitempty"`
}
