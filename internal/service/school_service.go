// FILE: internal/service/school_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"schoolhub-be/internal/dto"
	"schoolhub-be/internal/entity"
	"schoolhub-be/internal/pkg/mailer"
	"schoolhub-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISchoolService interface {
	GetAllSchools(ctx context.Context) ([]*dto.SchoolResponse, error)
	CreateSchool(ctx context.Context, req *dto.CreateSchoolRequest) (*dto.SchoolResponse, error)
}

type schoolService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
}

func NewSchoolService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService) ISchoolService {
	return &schoolService{
		uowFactory:   uowFactory,
		emailService: emailService,
	}
}

func (s *schoolService) GetAllSchools(ctx context.Context) ([]*dto.SchoolResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	schools, err := uow.SchoolRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SchoolResponse, 0, len(schools))
	for _, school := range schools {
		result = append(result, toSchoolResponse(school))
	}
	return result, nil
}

// CreateSchool provisions a tenant and its first school_admin account in
// one transaction. The admin signs in via Google against the provisioned
// email; no password is issued here.
func (s *schoolService) CreateSchool(ctx context.Context, req *dto.CreateSchoolRequest) (*dto.SchoolResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.SchoolRepository().FindBySubdomain(ctx, req.Subdomain)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("subdomain already taken")
	}

	school := &entity.School{
		Id:         uuid.New(),
		Name:       req.Name,
		Subdomain:  req.Subdomain,
		Status:     entity.SchoolStatusActive,
		AdminEmail: req.AdminEmail,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	admin := &entity.User{
		Id:            uuid.New(),
		SchoolId:      &school.Id,
		Email:         req.AdminEmail,
		FullName:      fmt.Sprintf("%s Admin", req.Name),
		Role:          entity.UserRoleSchoolAdmin,
		Status:        entity.UserStatusActive,
		EmailVerified: false,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.SchoolRepository().Create(ctx, school); err != nil {
		return nil, err
	}
	if err := uow.UserRepository().Create(ctx, admin); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	go func() {
		if emailErr := s.emailService.SendSchoolWelcome(school.AdminEmail, school.Name, school.Subdomain); emailErr != nil {
			fmt.Printf("Error sending school welcome email: %v\n", emailErr)
		}
	}()

	return toSchoolResponse(school), nil
}

func toSchoolResponse(school *entity.School) *dto.SchoolResponse {
	return &dto.SchoolResponse{
		Id:         school.Id,
		Name:       school.Name,
		Subdomain:  school.Subdomain,
		Status:     string(school.Status),
		AdminEmail: school.AdminEmail,
		CreatedAt:  school.CreatedAt,
	}
}
