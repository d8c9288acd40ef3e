//go:build unit || e2e

package builder

import (
	domcanteen "canteen-reservation/internal/domain/canteen"
	reqdto "canteen-reservation/internal/handler/dto/request"

	"github.com/google/uuid"
)

type CanteenBuilder struct {
	Name     string
	Location string
	Capacity int
	Hours    []domcanteen.Period
	OwnerID  uuid.UUID
}

func NewCanteenBuilder() *CanteenBuilder {
	return &CanteenBuilder{
		Name:     "Main Hall",
		Location: "Building A",
		Capacity: 50,
		Hours:    DefaultWorkingHoursPeriods(),
		OwnerID:  uuid.New(),
	}
}

// DefaultWorkingHoursPeriods covers three meals with an afternoon gap.
func DefaultWorkingHoursPeriods() []domcanteen.Period {
	return []domcanteen.Period{
		mustPeriod("breakfast", "07:00", "09:00"),
		mustPeriod("lunch", "11:30", "14:00"),
		mustPeriod("dinner", "17:30", "20:00"),
	}
}

func (b *CanteenBuilder) With(mutate func(*CanteenBuilder)) *CanteenBuilder {
	mutate(b)
	return b
}

func (b *CanteenBuilder) BuildDomain() (*domcanteen.Canteen, error) {
	hours, err := domcanteen.NewWorkingHours(b.Hours)
	if err != nil {
		return nil, err
	}
	return domcanteen.NewCanteen(b.Name, b.Location, b.Capacity, hours, b.OwnerID)
}

func (b *CanteenBuilder) BuildCreateRequestDTO() reqdto.CreateCanteenRequest {
	periods := make([]reqdto.WorkingHoursPeriod, len(b.Hours))
	for i, p := range b.Hours {
		periods[i] = reqdto.WorkingHoursPeriod{
			Meal: p.Meal.String(),
			From: p.From.String(),
			To:   p.To.String(),
		}
	}
	return reqdto.CreateCanteenRequest{
		Name:         b.Name,
		Location:     b.Location,
		Capacity:     b.Capacity,
		WorkingHours: periods,
	}
}

func mustPeriod(meal, from, to string) domcanteen.Period {
	p, err := domcanteen.NewPeriod(meal, from, to)
	if err != nil {
		panic(err)
	}
	return p
}
