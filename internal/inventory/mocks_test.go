package inventory

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// MockRecorder implements metrics.Recorder for testing
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) ItemUpdated(category domain.Category) {
	m.Called(category)
}

func (m *MockRecorder) CycleCompleted(items int, duration time.Duration) {
	m.Called(items, duration)
}

// MockCategorizer implements Categorizer for testing
type MockCategorizer struct {
	mock.Mock
}

func (m *MockCategorizer) Classify(name string) domain.Category {
	args := m.Called(name)
	return args.Get(0).(domain.Category)
}
