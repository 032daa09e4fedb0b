package plan

import (
	"math"
	"strings"
)

// Model constants. The 0.9 dampener feeds the guest projection; the
// 0.75 occupancy rate is reported as-is and is NOT used in any formula.
const (
	turnoverRate      = 2.0
	guestDampener     = 0.9
	laborCostRate     = 0.28
	fixedCostMonthly  = 540000
	baseEquipmentCost = 5000000
	perSeatCost       = 50000
	workingCapital    = 2000000
	seatOccupancyRate = 0.75
)

// Calculate maps a validated request to the full plan. It is pure:
// same input, same output, no I/O. The caller is responsible for
// rejecting non-positive Seats/ATV before calling.
func Calculate(in Input) Result {
	main := MainCategory(in.Type)

	dailyGuests := int(math.Round(float64(in.Seats) * turnoverRate * guestDampener))
	monthlySales := in.ATV * dailyGuests * 30

	cogsRate := cogsRateFor(main)
	cogs := int(math.Round(float64(monthlySales) * cogsRate))
	grossProfit := monthlySales - cogs

	laborCost := int(math.Round(float64(monthlySales) * laborCostRate))
	opIncome := grossProfit - laborCost - fixedCostMonthly

	// Not an amortization model: profitable plans get the optimistic
	// 18-month estimate, everything else 24.
	paybackMonths := 24
	if opIncome > 0 {
		paybackMonths = 18
	}

	initialInvestment := int(math.Round(
		float64(baseEquipmentCost+in.Seats*perSeatCost) * investmentMultiplierFor(main),
	))

	return Result{
		Turnover:      turnoverRate,
		DailyGuests:   dailyGuests,
		MonthlySales:  monthlySales,
		CogsRate:      cogsRate,
		Cogs:          cogs,
		GrossProfit:   grossProfit,
		LaborCost:     laborCost,
		FixedCost:     fixedCostMonthly,
		OpIncome:      opIncome,
		PaybackMonths: paybackMonths,
		Concept:       conceptFor(in.Type, in.Area),
		Action:        actionFor(in.Type),

		CatchCopy:         catchCopyFor(in.Type, in.Area),
		TargetAudience:    targetAudienceFor(in.Type, in.Area),
		MenuExamples:      menuExamplesFor(in.Type),
		SNSStrategy:       snsStrategyFor(in.Type, in.Area),
		StaffCount:        StaffCount(in.Seats, in.Hours),
		PeakOperation:     peakOperationFor(in.Hours),
		InitialInvestment: initialInvestment,
		OpeningCost:       initialInvestment + workingCapital,
		FundingMethods:    FundingMethods(in.Area),
		SeatOccupancyRate: seatOccupancyRate,
	}
}

// StaffCount is a step function of seat count. The hours parameter is
// accepted but currently unused (kept for interface stability with the
// original model).
func StaffCount(seats int, hours string) int {
	switch {
	case seats <= 20:
		return 2
	case seats <= 40:
		return 3
	default:
		return 4
	}
}

// peakOperationFor picks advice by substring-matching the free-text
// opening hours. First match wins: morning, then lunch, else evening.
func peakOperationFor(hours string) string {
	if strings.Contains(hours, "朝") || strings.Contains(hours, "8") || strings.Contains(hours, "9") {
		return "朝のピークタイム（8:00-10:00）は、準備を前日から進め、スタッフを多めに配置。テイクアウト対応も並行して行うと効率的です。"
	}
	if strings.Contains(hours, "ランチ") || strings.Contains(hours, "11") ||
		strings.Contains(hours, "12") || strings.Contains(hours, "13") {
		return "ランチタイム（11:30-14:00）は、事前準備を徹底し、回転率を上げるため簡易メニューも用意。スタッフを最大限配置します。"
	}
	return "夜のピークタイム（18:00-21:00）は、接客と調理を効率化し、予約とウォークインのバランスを取ります。"
}
