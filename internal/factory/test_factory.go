package factory

import (
	"time"

	"github.com/anvitha1105/Capstone-finalreview/internal/dependencies/mocks"
	"github.com/anvitha1105/Capstone-finalreview/internal/services/auth"
	"github.com/anvitha1105/Capstone-finalreview/internal/storage/memory"
	"github.com/anvitha1105/Capstone-finalreview/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	store := memory.New(mockClock, time.Hour)
	mockRandom := mocks.NewMockRandom()

	cfg := auth.DefaultConfig()
	cfg.TokenSecret = []byte("test-secret")
	cfg.BcryptCost = 4

	app := newWithDependencies(store, mockClock, mockRandom, cfg, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
