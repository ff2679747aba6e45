package bootstrap

import "github.com/Sudeep845/Raktsewa-sub001/internal/pkg/database"

type RewardsConfig struct {
	DbSettings database.PostgresSettings
	HttpPort   string
}
