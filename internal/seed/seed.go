package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/sykli/college-backend/internal/app/models"
	appRepos "github.com/sykli/college-backend/internal/app/repositories"
	"github.com/sykli/college-backend/internal/config"
	"github.com/sykli/college-backend/internal/pkg/apperrors"
	"github.com/sykli/college-backend/internal/pkg/auth"
)

// CreateDefaultData creates the default admin account and a starter catalog
// when they don't exist yet. Errors are collected so one failure does not
// block the rest of the seed.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	profileRepo := appRepos.NewProfileRepository(dbPool)
	schoolRepo := appRepos.NewSchoolRepository(dbPool)
	departmentRepo := appRepos.NewDepartmentRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/creating default data...")
	var finalErr error

	// --- Admin account --- //
	adminEmail := "admin@" + cfg.Institution.EmailDomain
	exists, err := profileRepo.EmailExists(ctx, adminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking admin account")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		hashed, err := auth.HashPassword(config.GetEnv("ADMIN_PASSWORD", "admin1234"))
		if err != nil {
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &appModels.Profile{
				Email:     adminEmail,
				Password:  hashed,
				FirstName: "Admin",
				LastName:  cfg.Institution.Name,
				RoleType:  appModels.RoleAdmin,
				IsActive:  true,
			}
			if err := profileRepo.Create(ctx, admin); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				lgr.Error().Err(err).Msg("Error creating admin account")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Str("email", adminEmail).Msg("Admin account created")
			}
		}
	}

	// --- School of Technology and its departments --- //
	techSchool := &appModels.School{Name: "School of Technology", Code: "TECH"}
	if err := schoolRepo.Create(ctx, techSchool); err != nil {
		if !errors.Is(err, apperrors.ErrSchoolAlreadyExists) {
			lgr.Error().Err(err).Msg("Error creating technology school")
			finalErr = errors.Join(finalErr, err)
		} else {
			schools, errGet := schoolRepo.GetAll(ctx)
			if errGet != nil {
				finalErr = errors.Join(finalErr, errGet)
			} else {
				for _, s := range schools {
					if s.Code == "TECH" {
						techSchool.ID = s.ID
						break
					}
				}
			}
		}
	}

	if techSchool.ID > 0 {
		itDept := &appModels.Department{SchoolID: techSchool.ID, Name: "Information Technology", Code: "IT"}
		if err := departmentRepo.Create(ctx, itDept); err != nil {
			if !errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
				lgr.Error().Err(err).Msg("Error creating IT department")
				finalErr = errors.Join(finalErr, err)
			} else {
				departments, errGet := departmentRepo.GetBySchoolID(ctx, techSchool.ID)
				if errGet != nil {
					finalErr = errors.Join(finalErr, errGet)
				} else {
					for _, d := range departments {
						if d.Code == "IT" {
							itDept.ID = d.ID
							break
						}
					}
				}
			}
		}

		if itDept.ID > 0 {
			bse := &appModels.Course{
				DepartmentID:  itDept.ID,
				Name:          "Bachelor of Software Engineering",
				Code:          "BSE",
				DurationYears: cfg.Institution.ProgramLengthYears,
			}
			if err := courseRepo.Create(ctx, bse); err != nil && !errors.Is(err, apperrors.ErrCourseAlreadyExists) {
				lgr.Error().Err(err).Msg("Error creating software engineering course")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	// --- School of Business --- //
	bizSchool := &appModels.School{Name: "School of Business", Code: "BIZ"}
	if err := schoolRepo.Create(ctx, bizSchool); err != nil && !errors.Is(err, apperrors.ErrSchoolAlreadyExists) {
		lgr.Error().Err(err).Msg("Error creating business school")
		finalErr = errors.Join(finalErr, err)
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data in place")
	}
	return finalErr
}
