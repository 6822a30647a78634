package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"art-valuation-service/internal/domain"
)

// MockReferenceStore is a mock of domain.ReferenceStore.
type MockReferenceStore struct {
	mock.Mock
}

func (m *MockReferenceStore) GetArtist(ctx context.Context, name string) (domain.ArtistRecord, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.ArtistRecord), args.Error(1)
}

func (m *MockReferenceStore) GetTechniqueArtistMedian(ctx context.Context, technique, artist string) (domain.TechniqueArtistRecord, error) {
	args := m.Called(ctx, technique, artist)
	return args.Get(0).(domain.TechniqueArtistRecord), args.Error(1)
}

func (m *MockReferenceStore) UpsertArtist(ctx context.Context, record domain.ArtistRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockReferenceStore) UpsertTechniqueArtist(ctx context.Context, record domain.TechniqueArtistRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// MockScorer is a mock of domain.Scorer.
type MockScorer struct {
	mock.Mock
}

func (m *MockScorer) Score(v *domain.FeatureVector) (float64, error) {
	args := m.Called(v)
	return args.Get(0).(float64), args.Error(1)
}
