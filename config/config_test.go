package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatabaseConfigs_ConnectionString(t *testing.T) {
	cfg := Configs{
		Database: DatabaseConfigs{
			Host:     "localhost",
			Port:     "3306",
			Database: "localboost",
			User:     "app",
			Password: "secret",
		},
	}

	require.Equal(t,
		"app:secret@tcp(localhost:3306)/localboost?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.ConnectionString())
}

func TestServerConfigs_Address(t *testing.T) {
	cfg := Configs{
		ApiServer: ServerConfigs{Host: "0.0.0.0", Port: "8080"},
	}

	require.Equal(t, "0.0.0.0:8080", cfg.ApiServer.Address())
}
