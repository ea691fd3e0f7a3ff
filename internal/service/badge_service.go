package service

import (
	"context"
)

type profileFetcher interface {
	Fetch(ctx context.Context, id string) (string, error)
}

type sakatsuExtractor interface {
	Extract(page string) (string, error)
}

type BadgeService struct {
	fetcher   profileFetcher
	extractor sakatsuExtractor
}

func NewBadgeService(fetcher profileFetcher, extractor sakatsuExtractor) *BadgeService {
	return &BadgeService{fetcher: fetcher, extractor: extractor}
}

// Sakatsu returns the visit count shown on the profile of the saunner id.
// Errors wrap one of the model scraping sentinels.
func (s *BadgeService) Sakatsu(ctx context.Context, id string) (string, error) {
	page, err := s.fetcher.Fetch(ctx, id)
	if err != nil {
		return "", err
	}

	return s.extractor.Extract(page)
}
