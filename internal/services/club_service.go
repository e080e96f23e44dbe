package services

import (
	"context"
	"time"

	"campus-connect/eventhub/internal/common"
	"campus-connect/eventhub/internal/constants"
	"campus-connect/eventhub/internal/db/repositories"
	"campus-connect/eventhub/internal/models/dtos"
	gormModels "campus-connect/eventhub/internal/models/gorm"
)

const referenceCacheTTL = 5 * time.Minute

// ClubService serves the club and student reference lists. Both change
// rarely, so the full lists are memoized.
type ClubService struct {
	clubs    *repositories.ClubRepository
	students *repositories.StudentRepository
	cache    common.CacheInterface
}

func NewClubService(
	clubs *repositories.ClubRepository,
	students *repositories.StudentRepository,
	cache common.CacheInterface,
) *ClubService {
	return &ClubService{
		clubs:    clubs,
		students: students,
		cache:    cache,
	}
}

func (s *ClubService) ListClubs(ctx context.Context) ([]dtos.ClubView, error) {
	val, err := s.cache.GetOrSet(string(constants.CachePrefixClubs), referenceCacheTTL, func() (any, error) {
		clubs, err := s.clubs.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return toClubViews(clubs), nil
	})
	if err != nil {
		return nil, err
	}
	return val.([]dtos.ClubView), nil
}

// MyClubs is per-student and not cached.
func (s *ClubService) MyClubs(ctx context.Context, usn string) ([]dtos.ClubView, error) {
	clubs, err := s.clubs.ListByStudent(ctx, usn)
	if err != nil {
		return nil, err
	}
	return toClubViews(clubs), nil
}

func (s *ClubService) ListStudents(ctx context.Context) ([]dtos.StudentView, error) {
	val, err := s.cache.GetOrSet(string(constants.CachePrefixStudents), referenceCacheTTL, func() (any, error) {
		students, err := s.students.ListAll(ctx)
		if err != nil {
			return nil, err
		}

		views := make([]dtos.StudentView, 0, len(students))
		for _, st := range students {
			views = append(views, dtos.StudentView{
				USN:      st.USN,
				Name:     st.Name,
				Semester: st.Semester,
				Mobile:   st.Mobile,
				Email:    st.Email,
			})
		}
		return views, nil
	})
	if err != nil {
		return nil, err
	}
	return val.([]dtos.StudentView), nil
}

func toClubViews(clubs []gormModels.Club) []dtos.ClubView {
	views := make([]dtos.ClubView, 0, len(clubs))
	for _, c := range clubs {
		views = append(views, dtos.ClubView{
			CID:         c.ID,
			Name:        c.Name,
			Description: c.Description,
			MaxMembers:  c.MaxMembers,
		})
	}
	return views
}
