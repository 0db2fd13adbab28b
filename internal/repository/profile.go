package repository

import (
	"context"
	"errors"

	"devconnect/internal/cache"
	"devconnect/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines persistence operations for profiles and their
// embedded experience/education records.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	GetByHandle(ctx context.Context, handle string) (*models.Profile, error)
	GetAll(ctx context.Context) ([]models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Save(ctx context.Context, profile *models.Profile) error
	AddExperience(ctx context.Context, profile *models.Profile, exp *models.Experience) error
	RemoveExperience(ctx context.Context, profile *models.Profile, expID uint) error
	AddEducation(ctx context.Context, profile *models.Profile, edu *models.Education) error
	RemoveEducation(ctx context.Context, profile *models.Profile, eduID uint) error
	Delete(ctx context.Context, profileID uint) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// withAssociations preloads the owning user's public fields and the embedded
// lists newest first, matching their prepend insertion order.
func withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "avatar")
		}).
		Preload("Experience", func(db *gorm.DB) *gorm.DB {
			return db.Order("id DESC")
		}).
		Preload("Education", func(db *gorm.DB) *gorm.DB {
			return db.Order("id DESC")
		})
}

// GetByUserID returns (nil, nil) when the user has no profile.
func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := withAssociations(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

// GetByHandle returns (nil, nil) when no profile owns the handle. Public
// handle lookups are served cache-aside.
func (r *profileRepository) GetByHandle(ctx context.Context, handle string) (*models.Profile, error) {
	var profile models.Profile
	missing := false

	err := cache.Aside(ctx, cache.ProfileKey(handle), &profile, cache.ProfileTTL, func() error {
		err := withAssociations(r.db.WithContext(ctx)).
			Where("handle = ?", handle).
			First(&profile).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			missing = true
			return errNotCached
		}
		if err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})

	if missing {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// errNotCached keeps absent rows out of the cache while signaling a miss.
var errNotCached = errors.New("not cached")

func (r *profileRepository) GetAll(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	err := withAssociations(r.db.WithContext(ctx)).
		Order("created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, profile.Handle)
	return nil
}

// Save persists an updated profile. A rename invalidates the cache entry for
// the prior handle as well, so the freed handle stops resolving immediately.
func (r *profileRepository) Save(ctx context.Context, profile *models.Profile) error {
	var prior models.Profile
	err := r.db.WithContext(ctx).Select("handle").First(&prior, profile.ID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewInternalError(err)
	}

	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return models.NewInternalError(err)
	}

	if prior.Handle != "" && prior.Handle != profile.Handle {
		cache.InvalidateProfile(ctx, prior.Handle)
	}
	cache.InvalidateProfile(ctx, profile.Handle)
	return nil
}

func (r *profileRepository) AddExperience(ctx context.Context, profile *models.Profile, exp *models.Experience) error {
	exp.ProfileID = profile.ID
	if err := r.db.WithContext(ctx).Create(exp).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, profile.Handle)
	return nil
}

// RemoveExperience deletes the entry when it belongs to the profile. Removal
// of an unknown identifier is a silent no-op.
func (r *profileRepository) RemoveExperience(ctx context.Context, profile *models.Profile, expID uint) error {
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profile.ID).
		Delete(&models.Experience{}, expID).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, profile.Handle)
	return nil
}

func (r *profileRepository) AddEducation(ctx context.Context, profile *models.Profile, edu *models.Education) error {
	edu.ProfileID = profile.ID
	if err := r.db.WithContext(ctx).Create(edu).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, profile.Handle)
	return nil
}

// RemoveEducation mirrors RemoveExperience, including the silent no-op.
func (r *profileRepository) RemoveEducation(ctx context.Context, profile *models.Profile, eduID uint) error {
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profile.ID).
		Delete(&models.Education{}, eduID).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, profile.Handle)
	return nil
}

func (r *profileRepository) Delete(ctx context.Context, profileID uint) error {
	var profile models.Profile
	err := r.db.WithContext(ctx).First(&profile, profileID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return models.NewInternalError(err)
	}

	if err := r.db.WithContext(ctx).Select("Experience", "Education").Delete(&profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, profile.Handle)
	return nil
}
