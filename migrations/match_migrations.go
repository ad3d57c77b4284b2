package migrations

import "gorm.io/gorm"

func GetMatchMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2024_06_01_000000_create_match_tables",
			Up: func(db *gorm.DB) error {
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS matches (
						id BIGSERIAL PRIMARY KEY,
						title VARCHAR(255) NOT NULL,
						date VARCHAR(10) NOT NULL,
						status VARCHAR(20) NOT NULL DEFAULT 'scheduled',
						winner_id BIGINT NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW()
					);
					CREATE INDEX IF NOT EXISTS idx_matches_status ON matches(status);
					CREATE INDEX IF NOT EXISTS idx_matches_created_at ON matches(created_at);
				`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS teams (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						match_id BIGINT NOT NULL,
						side VARCHAR(10) NOT NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						FOREIGN KEY (match_id) REFERENCES matches(id) ON DELETE CASCADE
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_teams_match_side ON teams(match_id, side);
				`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS players (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						created_at TIMESTAMP DEFAULT NOW()
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_players_name ON players(name);
				`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS team_players (
						id BIGSERIAL PRIMARY KEY,
						team_id BIGINT NOT NULL,
						player_id BIGINT NOT NULL,
						FOREIGN KEY (team_id) REFERENCES teams(id) ON DELETE CASCADE,
						FOREIGN KEY (player_id) REFERENCES players(id) ON DELETE CASCADE
					);
					CREATE INDEX IF NOT EXISTS idx_team_players_team_id ON team_players(team_id);
					CREATE INDEX IF NOT EXISTS idx_team_players_player_id ON team_players(player_id);
				`).Error; err != nil {
					return err
				}

				// Unique index on (match, team, set) backs the score upsert key.
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS scores (
						id BIGSERIAL PRIMARY KEY,
						match_id BIGINT NOT NULL,
						team_id BIGINT NOT NULL,
						set_number INT NOT NULL,
						games INT NOT NULL DEFAULT 0,
						updated_at TIMESTAMP DEFAULT NOW(),
						FOREIGN KEY (match_id) REFERENCES matches(id) ON DELETE CASCADE,
						FOREIGN KEY (team_id) REFERENCES teams(id) ON DELETE CASCADE
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_scores_match_team_set ON scores(match_id, team_id, set_number);
				`).Error; err != nil {
					return err
				}

				return nil
			},
			Down: func(db *gorm.DB) error {
				// Drop tables in reverse order (because of foreign keys)
				if err := db.Exec("DROP TABLE IF EXISTS scores CASCADE").Error; err != nil {
					return err
				}
				if err := db.Exec("DROP TABLE IF EXISTS team_players CASCADE").Error; err != nil {
					return err
				}
				if err := db.Exec("DROP TABLE IF EXISTS players CASCADE").Error; err != nil {
					return err
				}
				if err := db.Exec("DROP TABLE IF EXISTS teams CASCADE").Error; err != nil {
					return err
				}
				if err := db.Exec("DROP TABLE IF EXISTS matches CASCADE").Error; err != nil {
					return err
				}
				return nil
			},
		},
	}
}
