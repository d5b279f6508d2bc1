package prefs

type migration struct {
	name string
	sql  string
}

var migrations = []migration{
	{
		name: "create preferences table",
		sql: `
			CREATE TABLE IF NOT EXISTS preferences (
				key TEXT PRIMARY KEY,
				value TEXT NOT NULL,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`,
	},
	{
		name: "create collection cache table",
		sql: `
			CREATE TABLE IF NOT EXISTS collection_cache (
				name TEXT PRIMARY KEY,
				payload TEXT NOT NULL,
				cached_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`,
	},
}
