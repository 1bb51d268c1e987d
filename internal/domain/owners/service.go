package owners

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"horse-registry/internal/domain/apperr"
	"horse-registry/internal/platform/logger"
)

const (
	maxNameLength  = 255
	maxEmailLength = 255

	DefaultSearchLimit = 10
)

var emailPattern = regexp.MustCompile(
	"^[\\w!#$%&'+/=?`{|}~^-]+(?:\\.[\\w!#$%&'+/=?`{|}~^-]+)*@(?:[a-zA-Z0-9-]+\\.)+[a-zA-Z]{2,6}$",
)

type Service struct {
	repo Repository
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(map[string]any{"module": "owners"}),
	}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Owner, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	if in.Email != nil {
		if e := strings.TrimSpace(*in.Email); e != "" {
			in.Email = &e
		} else {
			in.Email = nil
		}
	}

	if err := ValidateForCreation(in); err != nil {
		s.log.Warn("owner rejected", map[string]any{"error": err.Error()})
		return Owner{}, err
	}

	o, err := s.repo.Create(ctx, in)
	if err != nil {
		return Owner{}, err
	}
	s.log.Info("owner created", map[string]any{"owner_id": o.ID})
	return o, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Owner, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetAllByIDs(ctx context.Context, ids []int64) (map[int64]Owner, error) {
	if len(ids) == 0 {
		return map[int64]Owner{}, nil
	}
	return s.repo.GetAllByIDs(ctx, ids)
}

func (s *Service) Search(ctx context.Context, filter SearchFilter) ([]Owner, error) {
	filter.Name = strings.TrimSpace(filter.Name)
	if filter.Limit <= 0 {
		filter.Limit = DefaultSearchLimit
	}
	return s.repo.Search(ctx, filter)
}

// ValidateForCreation reporta todas las fallas juntas como un único ValidationError.
func ValidateForCreation(in CreateInput) error {
	var c apperr.Collector

	if strings.TrimSpace(in.FirstName) == "" {
		c.Invalid("First name of owner cannot be blank")
	} else if utf8.RuneCountInString(in.FirstName) > maxNameLength {
		c.Invalid("First name too long, max length = 255")
	}
	if strings.TrimSpace(in.LastName) == "" {
		c.Invalid("Last name of owner cannot be blank")
	} else if utf8.RuneCountInString(in.LastName) > maxNameLength {
		c.Invalid("Last name too long, max length = 255")
	}

	if in.Email != nil {
		if utf8.RuneCountInString(*in.Email) > maxEmailLength {
			c.Invalid("Email too long, max length = 255")
		}
		if !emailPattern.MatchString(*in.Email) {
			c.Invalid("Email must be of form: example@mail.com")
		}
	}

	return c.Err("Validation of owner failed")
}
