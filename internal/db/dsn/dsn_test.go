package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ticket-office/ticket-office/internal/config"
)

func testConfig(engine string) *config.Config {
	return &config.Config{
		DB: config.DB{
			Host:       "localhost",
			Port:       5432,
			User:       "root",
			Password:   "example",
			Name:       "seetickets",
			GormEngine: engine,
			Extras:     "sslmode=disable",
		},
	}
}

func TestCreate_Postgres(t *testing.T) {
	cfg := testConfig("postgres")

	assert.Equal(t,
		"host=localhost port=5432 user=root password=example dbname=seetickets sslmode=disable",
		Create(cfg))
}

func TestCreate_PostgresIsDefault(t *testing.T) {
	cfg := testConfig("")
	cfg.DB.Extras = ""

	assert.Equal(t,
		"host=localhost port=5432 user=root password=example dbname=seetickets",
		Create(cfg))
}

func TestCreate_MySQL(t *testing.T) {
	cfg := testConfig("mysql")
	cfg.DB.Port = 3306
	cfg.DB.Extras = "charset=utf8mb4&parseTime=True"

	assert.Equal(t,
		"root:example@tcp(localhost:3306)/seetickets?charset=utf8mb4&parseTime=True",
		Create(cfg))
}
