package armorset_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"

	armorset "github.com/KirkDiggler/armor-builder/internal/repositories/armor_set"
)

// postgresDSNEnv names a scratch database; the suite truncates armor_sets
const postgresDSNEnv = "ARMOR_TEST_POSTGRES_DSN"

type PostgresRepositoryTestSuite struct {
	RepositoryBehaviorSuite
	dsn string
}

func TestPostgresRepositorySuite(t *testing.T) {
	dsn := os.Getenv(postgresDSNEnv)
	if dsn == "" {
		t.Skipf("%s not set", postgresDSNEnv)
	}
	suite.Run(t, &PostgresRepositoryTestSuite{dsn: dsn})
}

func (s *PostgresRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	s.Require().NoError(armorset.RunMigrations(s.ctx, s.dsn))

	pool, err := armorset.Connect(s.ctx, s.dsn)
	s.Require().NoError(err)
	s.T().Cleanup(pool.Close)

	_, err = pool.Exec(s.ctx, `DELETE FROM armor_sets`)
	s.Require().NoError(err)

	repo, err := armorset.NewPostgres(&armorset.PostgresConfig{Pool: pool})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *PostgresRepositoryTestSuite) TestNewPostgres() {
	_, err := armorset.NewPostgres(&armorset.PostgresConfig{})
	s.Require().Error(err)
	s.Contains(err.Error(), "pool cannot be nil")
}
