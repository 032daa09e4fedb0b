package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCafeNearStation(t *testing.T) {
	res := Calculate(Input{
		Type:  "カフェ",
		Seats: 20,
		ATV:   800,
		Hours: "10:00-20:00",
		Area:  "駅近",
	})

	assert.Equal(t, 2.0, res.Turnover)
	assert.Equal(t, 36, res.DailyGuests) // round(20 * 2.0 * 0.9)
	assert.Equal(t, 864000, res.MonthlySales)
	assert.Equal(t, 0.28, res.CogsRate)
	assert.Equal(t, 241920, res.Cogs)
	assert.Equal(t, 622080, res.GrossProfit)
	assert.Equal(t, 241920, res.LaborCost)
	assert.Equal(t, 540000, res.FixedCost)
	assert.Equal(t, -159840, res.OpIncome)
	assert.Equal(t, 24, res.PaybackMonths)

	assert.Equal(t, 6000000, res.InitialInvestment) // (5,000,000 + 20*50,000) * 1.0
	assert.Equal(t, 8000000, res.OpeningCost)
	assert.Equal(t, 0.75, res.SeatOccupancyRate)
}

func TestCalculateProfitablePlanGetsShortPayback(t *testing.T) {
	res := Calculate(Input{
		Type:  "カフェ",
		Seats: 40,
		ATV:   2000,
		Hours: "10:00-20:00",
		Area:  "駅近",
	})

	require.Positive(t, res.OpIncome)
	assert.Equal(t, 18, res.PaybackMonths)
}

func TestCalculateIsDeterministic(t *testing.T) {
	in := Input{Type: "焼鳥", Seats: 35, ATV: 3200, Hours: "17:00-23:00", Area: "住宅街"}

	first := Calculate(in)
	second := Calculate(in)

	assert.Equal(t, first, second)
}

func TestCalculateUnknownCategoryFallsBackEverywhere(t *testing.T) {
	res := Calculate(Input{
		Type:  "イタリアン",
		Seats: 25,
		ATV:   1500,
		Hours: "11:00-22:00",
		Area:  "住宅街",
	})

	assert.Equal(t, 0.30, res.CogsRate)
	assert.Equal(t, "住宅街のイタリアンとして、地域に愛される、こだわりの味と心地よい空間を提供するお店", res.Concept)
	assert.Equal(t, "住宅街で、イタリアンの新しいスタイルを", res.CatchCopy)
	assert.Equal(t, "幅広い年齢層、地域住民", res.TargetAudience)
	assert.Equal(t, "看板商品1つを試作し、SNSで反応をチェックする", res.Action)
	assert.Contains(t, res.SNSStrategy, "住宅街でのイタリアン店では")
	assert.Len(t, res.MenuExamples, 3)
	assert.NotEmpty(t, res.FundingMethods)

	// default investment multiplier 1.0
	assert.Equal(t, 5000000+25*50000, res.InitialInvestment)
}

func TestCalculateSubcategoryUsesMainCategoryTables(t *testing.T) {
	composite := Calculate(Input{Type: "和食 - 寿司", Seats: 20, ATV: 1200, Hours: "夜のみ", Area: "観光地"})
	parent := Calculate(Input{Type: "和食", Seats: 20, ATV: 1200, Hours: "夜のみ", Area: "観光地"})

	assert.Equal(t, parent.Concept, composite.Concept)
	assert.Equal(t, parent.CogsRate, composite.CogsRate)
	assert.Equal(t, parent.MenuExamples, composite.MenuExamples)
	assert.Equal(t, parent.InitialInvestment, composite.InitialInvestment)
}

func TestStaffCountSteps(t *testing.T) {
	cases := []struct {
		seats int
		want  int
	}{
		{1, 2},
		{20, 2},
		{21, 3},
		{40, 3},
		{41, 4},
		{120, 4},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, StaffCount(tc.seats, "11:00-22:00"), "seats=%d", tc.seats)
	}
}

// The hours argument exists for interface stability but has no effect
// on staffing. This pins that behavior.
func TestStaffCountIgnoresHours(t *testing.T) {
	assert.Equal(t, StaffCount(30, ""), StaffCount(30, "朝8時から深夜まで"))
	assert.Equal(t, StaffCount(50, "ランチのみ"), StaffCount(50, "24時間営業"))
}

func TestPeakOperationMatchOrder(t *testing.T) {
	morning := "朝のピークタイム"
	lunch := "ランチタイム"
	evening := "夜のピークタイム"

	cases := []struct {
		hours string
		want  string
	}{
		{"朝7時から", morning},
		{"8:00-15:00", morning},
		{"ランチ営業のみ", lunch},
		{"11:00-15:00", lunch},
		{"夜のみ", evening},
		{"", evening},
		// "9" wins over "13": morning is checked first
		{"9:00-13:00", morning},
		// quirk preserved from the model: "18:00" contains "8"
		{"18:00-21:00", morning},
	}

	for _, tc := range cases {
		assert.Contains(t, peakOperationFor(tc.hours), tc.want, "hours=%q", tc.hours)
	}
}

func TestInvestmentUsesCategoryMultiplier(t *testing.T) {
	yakitori := Calculate(Input{Type: "焼鳥", Seats: 20, ATV: 2000, Hours: "夜", Area: "駅近"})

	// (5,000,000 + 20*50,000) * 1.3
	assert.Equal(t, 7800000, yakitori.InitialInvestment)
	assert.Equal(t, yakitori.InitialInvestment+2000000, yakitori.OpeningCost)
}
