package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sykli/college-backend/internal/app/models"
	"github.com/sykli/college-backend/internal/app/repositories"
	"github.com/sykli/college-backend/internal/pkg/apperrors"
)

type mockApplicationStore struct {
	mock.Mock
}

func (m *mockApplicationStore) GetWithRelations(ctx context.Context, id int64) (*models.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *mockApplicationStore) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type mockStudentStore struct {
	mock.Mock
}

func (m *mockStudentStore) UpsertByApplication(ctx context.Context, student *models.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *mockStudentStore) GetByApplicationID(ctx context.Context, applicationID int64) (*models.Student, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

type mockProfileStore struct {
	mock.Mock
}

func (m *mockProfileStore) PromoteToStudent(ctx context.Context, profileID int64, studentNumber string) error {
	args := m.Called(ctx, profileID, studentNumber)
	return args.Error(0)
}

type mockIntentStore struct {
	mock.Mock
}

func (m *mockIntentStore) Create(ctx context.Context, intent *models.EnrollmentIntent) error {
	args := m.Called(ctx, intent)
	return args.Error(0)
}

func (m *mockIntentStore) SetState(ctx context.Context, id string, state models.IntentState, failedSteps []string) error {
	args := m.Called(ctx, id, state, failedSteps)
	return args.Error(0)
}

func (m *mockIntentStore) ListIncomplete(ctx context.Context, cutoff time.Time, limit int) ([]*models.EnrollmentIntent, error) {
	args := m.Called(ctx, cutoff, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.EnrollmentIntent), args.Error(1)
}

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) SendWelcomeEmail(toEmail, toName, studentNumber, institutionalEmail string) error {
	args := m.Called(toEmail, toName, studentNumber, institutionalEmail)
	return args.Error(0)
}

type enrollmentMocks struct {
	applications *mockApplicationStore
	students     *mockStudentStore
	profiles     *mockProfileStore
	intents      *mockIntentStore
	mail         *mockEmailService
}

func newEnrollmentService(t *testing.T) (*EnrollmentService, *enrollmentMocks) {
	t.Helper()

	m := &enrollmentMocks{
		applications: new(mockApplicationStore),
		students:     new(mockStudentStore),
		profiles:     new(mockProfileStore),
		intents:      new(mockIntentStore),
		mail:         new(mockEmailService),
	}

	svc := &EnrollmentService{
		applicationRepo: m.applications,
		studentRepo:     m.students,
		profileRepo:     m.profiles,
		intentRepo:      m.intents,
		emailService:    m.mail,
		logger:          zerolog.Nop(),
		institutionCode: "SYK",
		emailDomain:     "syklicollege.fi",
		programYears:    3,
		generateNumber:  func() int { return 1042 },
	}

	return svc, m
}

func (m *enrollmentMocks) assertExpectations(t *testing.T) {
	m.applications.AssertExpectations(t)
	m.students.AssertExpectations(t)
	m.profiles.AssertExpectations(t)
	m.intents.AssertExpectations(t)
	m.mail.AssertExpectations(t)
}

func paidApplication() *models.Application {
	return &models.Application{
		ID:        7,
		ProfileID: 3,
		CourseID:  5,
		Status:    models.ApplicationPaymentSubmitted,
		Profile: &models.Profile{
			ID:        3,
			Email:     "ada@example.com",
			FirstName: "Ada",
			LastName:  "Lovelace",
			RoleType:  models.RoleApplicant,
			IsActive:  true,
		},
		Course: &models.Course{
			ID:            5,
			Name:          "Bachelor of Software Engineering",
			Code:          "BSE",
			DurationYears: 3,
		},
	}
}

func TestEnrollHappyPath(t *testing.T) {
	svc, m := newEnrollmentService(t)
	app := paidApplication()
	wantNumber := fmt.Sprintf("SYK-%d-1042", time.Now().Year())

	m.applications.On("GetWithRelations", mock.Anything, int64(7)).Return(app, nil)
	m.intents.On("Create", mock.Anything, mock.AnythingOfType("*models.EnrollmentIntent")).Return(nil)
	m.students.On("UpsertByApplication", mock.Anything, mock.MatchedBy(func(s *models.Student) bool {
		return s.ApplicationID == 7 &&
			s.ProfileID == 3 &&
			s.CourseID == 5 &&
			s.StudentNumber == wantNumber &&
			s.InstitutionalEmail == "ada.lovelace@syklicollege.fi" &&
			s.PersonalEmail == "ada@example.com" &&
			s.EnrollmentStatus == models.EnrollmentActive
	})).Return(nil)
	m.applications.On("UpdateStatus", mock.Anything, int64(7), models.ApplicationEnrolled).Return(nil)
	m.profiles.On("PromoteToStudent", mock.Anything, int64(3), wantNumber).Return(nil)
	m.intents.On("SetState", mock.Anything, mock.AnythingOfType("string"), models.IntentComplete, []string(nil)).Return(nil)
	m.mail.On("SendWelcomeEmail", "ada@example.com", "Ada Lovelace", wantNumber, "ada.lovelace@syklicollege.fi").Return(nil)

	resp, err := svc.Enroll(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, wantNumber, resp.StudentNumber)
	assert.Equal(t, "ada.lovelace@syklicollege.fi", resp.InstitutionalEmail)
	m.assertExpectations(t)
}

func TestEnrollMissingApplicationHaltsBeforeAnyWrite(t *testing.T) {
	svc, m := newEnrollmentService(t)

	m.applications.On("GetWithRelations", mock.Anything, int64(99)).Return(nil, apperrors.ErrApplicationNotFound)

	resp, err := svc.Enroll(context.Background(), 99)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
	m.intents.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.students.AssertNotCalled(t, "UpsertByApplication", mock.Anything, mock.Anything)
	m.assertExpectations(t)
}

func TestEnrollRetriesCollidingStudentNumber(t *testing.T) {
	svc, m := newEnrollmentService(t)
	app := paidApplication()

	numbers := []int{1042, 2042, 3042}
	calls := 0
	svc.generateNumber = func() int {
		n := numbers[calls%len(numbers)]
		calls++
		return n
	}
	finalNumber := fmt.Sprintf("SYK-%d-3042", time.Now().Year())

	m.applications.On("GetWithRelations", mock.Anything, int64(7)).Return(app, nil)
	m.intents.On("Create", mock.Anything, mock.Anything).Return(nil)
	m.students.On("UpsertByApplication", mock.Anything, mock.Anything).Return(repositories.ErrStudentNumberTaken).Twice()
	m.students.On("UpsertByApplication", mock.Anything, mock.MatchedBy(func(s *models.Student) bool {
		return s.StudentNumber == finalNumber
	})).Return(nil).Once()
	m.applications.On("UpdateStatus", mock.Anything, int64(7), models.ApplicationEnrolled).Return(nil)
	m.profiles.On("PromoteToStudent", mock.Anything, int64(3), finalNumber).Return(nil)
	m.intents.On("SetState", mock.Anything, mock.Anything, models.IntentComplete, []string(nil)).Return(nil)
	m.mail.On("SendWelcomeEmail", mock.Anything, mock.Anything, finalNumber, mock.Anything).Return(nil)

	resp, err := svc.Enroll(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, finalNumber, resp.StudentNumber)
	m.students.AssertNumberOfCalls(t, "UpsertByApplication", 3)
}

func TestEnrollGivesUpAfterThreeCollisions(t *testing.T) {
	svc, m := newEnrollmentService(t)
	app := paidApplication()

	m.applications.On("GetWithRelations", mock.Anything, int64(7)).Return(app, nil)
	m.intents.On("Create", mock.Anything, mock.Anything).Return(nil)
	m.students.On("UpsertByApplication", mock.Anything, mock.Anything).Return(repositories.ErrStudentNumberTaken)

	resp, err := svc.Enroll(context.Background(), 7)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrStudentNumberExhausted)
	m.students.AssertNumberOfCalls(t, "UpsertByApplication", 3)
	m.applications.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	m.profiles.AssertNotCalled(t, "PromoteToStudent", mock.Anything, mock.Anything, mock.Anything)
}

func TestEnrollInstitutionalEmailConflictIsFatal(t *testing.T) {
	svc, m := newEnrollmentService(t)
	app := paidApplication()

	m.applications.On("GetWithRelations", mock.Anything, int64(7)).Return(app, nil)
	m.intents.On("Create", mock.Anything, mock.Anything).Return(nil)
	m.students.On("UpsertByApplication", mock.Anything, mock.Anything).Return(apperrors.ErrInstitutionalEmailExists)

	resp, err := svc.Enroll(context.Background(), 7)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrInstitutionalEmailExists)
	m.students.AssertNumberOfCalls(t, "UpsertByApplication", 1)
}

func TestEnrollSucceedsWhenFollowUpWritesFail(t *testing.T) {
	svc, m := newEnrollmentService(t)
	app := paidApplication()
	wantNumber := fmt.Sprintf("SYK-%d-1042", time.Now().Year())

	m.applications.On("GetWithRelations", mock.Anything, int64(7)).Return(app, nil)
	m.intents.On("Create", mock.Anything, mock.Anything).Return(nil)
	m.students.On("UpsertByApplication", mock.Anything, mock.Anything).Return(nil)
	m.applications.On("UpdateStatus", mock.Anything, int64(7), models.ApplicationEnrolled).Return(errors.New("connection reset"))
	m.profiles.On("PromoteToStudent", mock.Anything, int64(3), wantNumber).Return(errors.New("connection reset"))
	m.intents.On("SetState", mock.Anything, mock.Anything, models.IntentPartial, []string{"application_status", "profile_role"}).Return(nil)
	m.mail.On("SendWelcomeEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	resp, err := svc.Enroll(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, wantNumber, resp.StudentNumber)
	m.assertExpectations(t)
}

func TestEnrollIntentWriteFailureDoesNotBlockTheRun(t *testing.T) {
	svc, m := newEnrollmentService(t)
	app := paidApplication()
	wantNumber := fmt.Sprintf("SYK-%d-1042", time.Now().Year())

	m.applications.On("GetWithRelations", mock.Anything, int64(7)).Return(app, nil)
	m.intents.On("Create", mock.Anything, mock.Anything).Return(errors.New("intents table unavailable"))
	m.students.On("UpsertByApplication", mock.Anything, mock.Anything).Return(nil)
	m.applications.On("UpdateStatus", mock.Anything, int64(7), models.ApplicationEnrolled).Return(nil)
	m.profiles.On("PromoteToStudent", mock.Anything, int64(3), wantNumber).Return(nil)
	m.mail.On("SendWelcomeEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	resp, err := svc.Enroll(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, wantNumber, resp.StudentNumber)
	m.intents.AssertNotCalled(t, "SetState", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEnrollReRunKeepsStoredStudentNumber(t *testing.T) {
	svc, m := newEnrollmentService(t)
	app := paidApplication()
	storedNumber := fmt.Sprintf("SYK-%d-9001", time.Now().Year()-1)

	m.applications.On("GetWithRelations", mock.Anything, int64(7)).Return(app, nil)
	m.intents.On("Create", mock.Anything, mock.Anything).Return(nil)
	// The upsert reports back the number of the already existing row
	m.students.On("UpsertByApplication", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Student).StudentNumber = storedNumber
	}).Return(nil)
	m.applications.On("UpdateStatus", mock.Anything, int64(7), models.ApplicationEnrolled).Return(nil)
	m.profiles.On("PromoteToStudent", mock.Anything, int64(3), storedNumber).Return(nil)
	m.intents.On("SetState", mock.Anything, mock.Anything, models.IntentComplete, []string(nil)).Return(nil)
	m.mail.On("SendWelcomeEmail", mock.Anything, mock.Anything, storedNumber, mock.Anything).Return(nil)

	resp, err := svc.Enroll(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, storedNumber, resp.StudentNumber)
	m.assertExpectations(t)
}

func TestEnrollWelcomeEmailFailureIsIgnored(t *testing.T) {
	svc, m := newEnrollmentService(t)
	app := paidApplication()

	m.applications.On("GetWithRelations", mock.Anything, int64(7)).Return(app, nil)
	m.intents.On("Create", mock.Anything, mock.Anything).Return(nil)
	m.students.On("UpsertByApplication", mock.Anything, mock.Anything).Return(nil)
	m.applications.On("UpdateStatus", mock.Anything, int64(7), models.ApplicationEnrolled).Return(nil)
	m.profiles.On("PromoteToStudent", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.intents.On("SetState", mock.Anything, mock.Anything, models.IntentComplete, []string(nil)).Return(nil)
	m.mail.On("SendWelcomeEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp timeout"))

	_, err := svc.Enroll(context.Background(), 7)

	require.NoError(t, err)
}

func TestInstitutionalEmailNormalization(t *testing.T) {
	svc, _ := newEnrollmentService(t)

	tests := []struct {
		firstName string
		lastName  string
		want      string
	}{
		{"Ada", "Lovelace", "ada.lovelace@syklicollege.fi"},
		{"  Grace ", "Hopper", "grace.hopper@syklicollege.fi"},
		{"Anna Maria", "van Helsing", "annamaria.vanhelsing@syklicollege.fi"},
		{"KAI", "Korhonen", "kai.korhonen@syklicollege.fi"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, svc.InstitutionalEmail(tt.firstName, tt.lastName))
	}
}

func TestStudentNumberFormat(t *testing.T) {
	svc, _ := newEnrollmentService(t)
	svc.generateNumber = func() int { return 1000 }

	want := fmt.Sprintf("SYK-%d-1000", time.Now().Year())
	assert.Equal(t, want, svc.StudentNumber())
}

func TestReconcileRetiresIntentForMissingApplication(t *testing.T) {
	svc, m := newEnrollmentService(t)
	intent := &models.EnrollmentIntent{
		ID:            "1c9f9f3e-0000-0000-0000-000000000001",
		ApplicationID: 404,
		StudentNumber: "SYK-2025-1042",
		State:         models.IntentPending,
	}

	m.applications.On("GetWithRelations", mock.Anything, int64(404)).Return(nil, apperrors.ErrApplicationNotFound)
	m.intents.On("SetState", mock.Anything, intent.ID, models.IntentComplete, []string{"application_missing"}).Return(nil)

	err := svc.Reconcile(context.Background(), intent)

	require.NoError(t, err)
	m.assertExpectations(t)
}

func TestReconcileReplaysMissingStudentWrite(t *testing.T) {
	svc, m := newEnrollmentService(t)
	app := paidApplication()
	intent := &models.EnrollmentIntent{
		ID:            "1c9f9f3e-0000-0000-0000-000000000002",
		ApplicationID: 7,
		StudentNumber: "SYK-2025-4242",
		State:         models.IntentPending,
	}

	m.applications.On("GetWithRelations", mock.Anything, int64(7)).Return(app, nil)
	m.students.On("GetByApplicationID", mock.Anything, int64(7)).Return(nil, apperrors.ErrStudentNotFound)
	m.students.On("UpsertByApplication", mock.Anything, mock.MatchedBy(func(s *models.Student) bool {
		return s.StudentNumber == "SYK-2025-4242" && s.ApplicationID == 7
	})).Return(nil)
	m.applications.On("UpdateStatus", mock.Anything, int64(7), models.ApplicationEnrolled).Return(nil)
	m.profiles.On("PromoteToStudent", mock.Anything, int64(3), "SYK-2025-4242").Return(nil)
	m.intents.On("SetState", mock.Anything, intent.ID, models.IntentComplete, []string(nil)).Return(nil)

	err := svc.Reconcile(context.Background(), intent)

	require.NoError(t, err)
	m.assertExpectations(t)
}

func TestReconcileSkipsAlreadyLandedWrites(t *testing.T) {
	svc, m := newEnrollmentService(t)
	app := paidApplication()
	app.Status = models.ApplicationEnrolled
	number := "SYK-2025-4242"
	app.Profile.RoleType = models.RoleStudent
	app.Profile.StudentNumber = &number
	intent := &models.EnrollmentIntent{
		ID:            "1c9f9f3e-0000-0000-0000-000000000003",
		ApplicationID: 7,
		StudentNumber: number,
		State:         models.IntentPartial,
	}

	m.applications.On("GetWithRelations", mock.Anything, int64(7)).Return(app, nil)
	m.students.On("GetByApplicationID", mock.Anything, int64(7)).Return(&models.Student{
		ApplicationID: 7,
		StudentNumber: number,
	}, nil)
	m.intents.On("SetState", mock.Anything, intent.ID, models.IntentComplete, []string(nil)).Return(nil)

	err := svc.Reconcile(context.Background(), intent)

	require.NoError(t, err)
	m.applications.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	m.profiles.AssertNotCalled(t, "PromoteToStudent", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcileIncompleteKeepsGoingPastFailures(t *testing.T) {
	svc, m := newEnrollmentService(t)
	goodApp := paidApplication()
	intents := []*models.EnrollmentIntent{
		{ID: "a", ApplicationID: 7, StudentNumber: "SYK-2025-1042", State: models.IntentPending},
		{ID: "b", ApplicationID: 8, StudentNumber: "SYK-2025-2042", State: models.IntentPartial},
	}

	m.intents.On("ListIncomplete", mock.Anything, mock.AnythingOfType("time.Time"), 100).Return(intents, nil)

	m.applications.On("GetWithRelations", mock.Anything, int64(7)).Return(goodApp, nil)
	m.students.On("GetByApplicationID", mock.Anything, int64(7)).Return(&models.Student{
		ApplicationID: 7,
		StudentNumber: "SYK-2025-1042",
	}, nil)
	m.applications.On("UpdateStatus", mock.Anything, int64(7), models.ApplicationEnrolled).Return(nil)
	m.profiles.On("PromoteToStudent", mock.Anything, int64(3), "SYK-2025-1042").Return(nil)
	m.intents.On("SetState", mock.Anything, "a", models.IntentComplete, []string(nil)).Return(nil)

	m.applications.On("GetWithRelations", mock.Anything, int64(8)).Return(nil, errors.New("connection reset"))

	repaired, err := svc.ReconcileIncomplete(context.Background(), 5*time.Minute, 100)

	require.NoError(t, err)
	assert.Equal(t, 1, repaired)
	m.assertExpectations(t)
}
