package usecases

import (
	"context"

	"github.com/casaplex/casaplex/internal/domain/listing"
)

// SubmissionNotifier alerts the operator mailbox when an entity enters the
// review queue. The SMTP implementation no-ops when no operator address is
// configured.
type SubmissionNotifier interface {
	SendSubmissionNotice(kind, title, agentName string) error
}

// cityNameIndex loads the city catalog once and indexes names by ID so a
// result page needs a single catalog query.
func cityNameIndex(ctx context.Context, cityRepo listing.CityRepository) (map[uint]string, error) {
	cities, err := cityRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(cities))
	for _, c := range cities {
		names[c.ID()] = c.Name()
	}
	return names, nil
}
