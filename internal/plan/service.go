package plan

import (
	"context"

	"github.com/sirupsen/logrus"
)

type Service struct {
	repo Repository
	log  *logrus.Logger
}

func NewService(repo Repository, log *logrus.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// --------------------------------------------------
// Create: calculate, persist, merge
// --------------------------------------------------

// Create runs the calculator once, persists the stored subset and
// merges the returned id/created_at with the derived-only fields of
// that same calculation. The calculator is never re-run for the
// response.
func (s *Service) Create(ctx context.Context, in Input) (*Detail, error) {
	res := Calculate(in)

	p := &Plan{
		Type:  in.Type,
		Seats: in.Seats,
		ATV:   in.ATV,
		Hours: in.Hours,
		Area:  in.Area,

		Turnover:      res.Turnover,
		DailyGuests:   res.DailyGuests,
		MonthlySales:  res.MonthlySales,
		CogsRate:      res.CogsRate,
		Cogs:          res.Cogs,
		GrossProfit:   res.GrossProfit,
		LaborCost:     res.LaborCost,
		FixedCost:     res.FixedCost,
		OpIncome:      res.OpIncome,
		PaybackMonths: res.PaybackMonths,
		Concept:       res.Concept,
		Action:        res.Action,
	}

	if err := s.repo.Insert(ctx, p); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"type": in.Type,
			"area": in.Area,
		}).Error("failed to persist business plan")
		return nil, err
	}

	return &Detail{
		Plan: *p,

		CatchCopy:         res.CatchCopy,
		TargetAudience:    res.TargetAudience,
		MenuExamples:      res.MenuExamples,
		SNSStrategy:       res.SNSStrategy,
		StaffCount:        res.StaffCount,
		PeakOperation:     res.PeakOperation,
		InitialInvestment: res.InitialInvestment,
		OpeningCost:       res.OpeningCost,
		FundingMethods:    res.FundingMethods,
		SeatOccupancyRate: res.SeatOccupancyRate,
	}, nil
}

// --------------------------------------------------
// Read paths
// --------------------------------------------------

func (s *Service) Get(ctx context.Context, id int64) (*Plan, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, skip, limit int) ([]*Plan, error) {
	return s.repo.List(ctx, skip, limit)
}
