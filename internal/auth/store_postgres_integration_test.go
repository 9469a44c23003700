//go:build integration

package auth_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"medicinna/internal/auth"
	"medicinna/pkg/testutil/containers"
)

type PostgresUserStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *auth.PostgresUserStore
	ctx   context.Context
}

func TestPostgresUserStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresUserStoreSuite))
}

func (s *PostgresUserStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	s.pg = containers.NewPostgresContainer(s.T())
	s.store = auth.NewPostgresUserStore(s.pg.DB)
}

func (s *PostgresUserStoreSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateTables(s.ctx, "users"))
}

func (s *PostgresUserStoreSuite) newUser(email string) *auth.User {
	hashed, err := auth.HashPassword("s3cret")
	s.Require().NoError(err)
	return &auth.User{
		ID:             uuid.New(),
		Email:          email,
		HashedPassword: hashed,
		HospitalName:   "Lakeside Clinic",
		Role:           auth.RoleHospital,
	}
}

func (s *PostgresUserStoreSuite) TestCreateAndFind() {
	created := s.newUser("lakeside@medicinna.app")
	s.Require().NoError(s.store.Create(s.ctx, created))

	found, err := s.store.FindByEmail(s.ctx, "lakeside@medicinna.app")
	s.Require().NoError(err)
	s.Equal(created.ID, found.ID)
	s.Equal("Lakeside Clinic", found.HospitalName)
	s.Equal(auth.RoleHospital, found.Role)
	s.NoError(auth.VerifyPassword("s3cret", found.HashedPassword))
}

func (s *PostgresUserStoreSuite) TestDuplicateEmailIsRejected() {
	s.Require().NoError(s.store.Create(s.ctx, s.newUser("lakeside@medicinna.app")))

	err := s.store.Create(s.ctx, s.newUser("lakeside@medicinna.app"))
	s.ErrorIs(err, auth.ErrDuplicateEmail)
}

func (s *PostgresUserStoreSuite) TestFindUnknownEmail() {
	_, err := s.store.FindByEmail(s.ctx, "nobody@medicinna.app")
	s.ErrorIs(err, auth.ErrNotFound)
}
