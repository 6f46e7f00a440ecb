package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/menstrualmentor/backend/internal/analysis"
	"github.com/menstrualmentor/backend/internal/models"
	"github.com/menstrualmentor/backend/internal/repository"
	"github.com/menstrualmentor/backend/pkg/supabase"
)

var mockIDCounter int

func generateMockID() string {
	mockIDCounter++
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", mockIDCounter)
}

// mockCycleRepository is an in-memory CycleRepository for testing
type mockCycleRepository struct {
	cycles      map[string]*models.Cycle // id -> cycle
	order       []string                 // insertion order
	createCalls int
	deleteCalls int
	lastLimit   int
	err         error
}

func newMockCycleRepository() *mockCycleRepository {
	return &mockCycleRepository{cycles: make(map[string]*models.Cycle)}
}

func (m *mockCycleRepository) add(userID, date string, length int, mood, energy string) *models.Cycle {
	d, err := models.ParseCalendarDate(date)
	if err != nil {
		panic(err)
	}
	c := &models.Cycle{
		ID:          generateMockID(),
		UserID:      userID,
		CycleLength: length,
		Mood:        analysis.Mood(mood),
		Energy:      analysis.Energy(energy),
		Date:        d,
		CreatedAt:   time.Now(),
	}
	m.cycles[c.ID] = c
	m.order = append(m.order, c.ID)
	return c
}

func (m *mockCycleRepository) Create(ctx context.Context, cycle *models.Cycle) (*models.Cycle, error) {
	m.createCalls++
	if m.err != nil {
		return nil, m.err
	}
	if cycle.ID == "" {
		cycle.ID = generateMockID()
	}
	cycle.CreatedAt = time.Now()
	m.cycles[cycle.ID] = cycle
	m.order = append(m.order, cycle.ID)
	return cycle, nil
}

func (m *mockCycleRepository) GetByID(ctx context.Context, id string) (*models.Cycle, error) {
	if c, ok := m.cycles[id]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("cycle %s: %w", id, repository.ErrNotFound)
}

func (m *mockCycleRepository) GetRecentByUserID(ctx context.Context, userID string, limit int) ([]models.Cycle, error) {
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}

	var result []models.Cycle
	for _, id := range m.order {
		if c, ok := m.cycles[id]; ok && c.UserID == userID {
			result = append(result, *c)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.Time().After(result[j].Date.Time())
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockCycleRepository) Delete(ctx context.Context, id string) error {
	m.deleteCalls++
	delete(m.cycles, id)
	return nil
}

type mockImageAnalysisRepository struct {
	records []models.ImageAnalysis
	err     error
}

func (m *mockImageAnalysisRepository) Create(ctx context.Context, record *models.ImageAnalysis) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, *record)
	return nil
}

type mockTextAnalysisRepository struct {
	records []models.TextAnalysis
	err     error
}

func (m *mockTextAnalysisRepository) Create(ctx context.Context, record *models.TextAnalysis) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, *record)
	return nil
}

type mockAdvisor struct {
	advice string
	err    error
	calls  int
}

func (m *mockAdvisor) Advise(ctx context.Context, text string) (string, error) {
	m.calls++
	return m.advice, m.err
}

type mockProfileRepository struct {
	profiles  map[string]*models.UserProfile
	createErr error
}

func newMockProfileRepository() *mockProfileRepository {
	return &mockProfileRepository{profiles: make(map[string]*models.UserProfile)}
}

func (m *mockProfileRepository) GetByID(ctx context.Context, id string) (*models.UserProfile, error) {
	if p, ok := m.profiles[id]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("profile %s: %w", id, repository.ErrNotFound)
}

func (m *mockProfileRepository) Create(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.profiles[profile.ID] = profile
	return profile, nil
}

type mockAuthenticator struct {
	session *supabase.Session
	err     error
}

func (m *mockAuthenticator) SignInWithPassword(ctx context.Context, email, password string) (*supabase.Session, error) {
	return m.session, m.err
}

func (m *mockAuthenticator) SignUp(ctx context.Context, email, password string) (*supabase.Session, error) {
	return m.session, m.err
}
