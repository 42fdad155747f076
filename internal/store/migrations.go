package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS campaigns (
	id              INTEGER PRIMARY KEY,
	name            TEXT NOT NULL UNIQUE,
	status          TEXT NOT NULL,
	progress        INTEGER NOT NULL DEFAULT 0 CHECK(progress BETWEEN 0 AND 100),
	start_date      TEXT NOT NULL DEFAULT '',
	end_date        TEXT NOT NULL DEFAULT '',
	team            TEXT NOT NULL DEFAULT '[]',
	task_count      INTEGER NOT NULL DEFAULT 0,
	completed_tasks INTEGER NOT NULL DEFAULT 0,
	channels        TEXT NOT NULL DEFAULT '[]',
	tags            TEXT NOT NULL DEFAULT '[]',
	brief           TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS tasks (
	id            INTEGER PRIMARY KEY,
	title         TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	status        TEXT NOT NULL,
	priority      TEXT NOT NULL DEFAULT 'Medium',
	assignee      TEXT NOT NULL DEFAULT '',
	campaign      TEXT NOT NULL DEFAULT '',
	due_date      TEXT NOT NULL DEFAULT '',
	tags          TEXT NOT NULL DEFAULT '[]',
	comment_count INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);
CREATE INDEX IF NOT EXISTS idx_tasks_campaign ON tasks(campaign);
CREATE INDEX IF NOT EXISTS idx_tasks_assignee ON tasks(assignee);

CREATE TABLE IF NOT EXISTS comments (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	id         TEXT NOT NULL UNIQUE,
	task_id    INTEGER NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
	author     TEXT NOT NULL,
	body       TEXT NOT NULL,
	time_label TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_comments_task_id ON comments(task_id);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
	{
		version: 2,
		sql: `
CREATE TABLE IF NOT EXISTS team_members (
	id       INTEGER PRIMARY KEY,
	name     TEXT NOT NULL,
	role     TEXT NOT NULL DEFAULT '',
	email    TEXT NOT NULL DEFAULT '',
	presence TEXT NOT NULL DEFAULT 'offline' CHECK(presence IN ('online', 'away', 'offline')),
	tasks    INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS folders (
	id   INTEGER PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS files (
	id       INTEGER PRIMARY KEY,
	name     TEXT NOT NULL,
	type     TEXT NOT NULL,
	size     TEXT NOT NULL DEFAULT '',
	modified TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS feedback_requests (
	id        INTEGER PRIMARY KEY,
	title     TEXT NOT NULL,
	campaign  TEXT NOT NULL DEFAULT '',
	status    TEXT NOT NULL,
	requester TEXT NOT NULL DEFAULT '',
	created   TEXT NOT NULL DEFAULT '',
	priority  TEXT NOT NULL DEFAULT 'Medium',
	comments  INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS feedback_activity (
	id         INTEGER PRIMARY KEY,
	activity   TEXT NOT NULL,
	actor      TEXT NOT NULL,
	time_label TEXT NOT NULL DEFAULT ''
);

INSERT INTO schema_version (version) VALUES (2);
`,
	},
	{
		version: 3,
		sql: `
CREATE TABLE IF NOT EXISTS metrics (
	id           INTEGER PRIMARY KEY,
	metric_group TEXT NOT NULL,
	title        TEXT NOT NULL,
	value        TEXT NOT NULL,
	change       TEXT NOT NULL DEFAULT '',
	color        TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_metrics_group ON metrics(metric_group);

CREATE TABLE IF NOT EXISTS performance (
	id          INTEGER PRIMARY KEY,
	campaign    TEXT NOT NULL,
	impressions TEXT NOT NULL DEFAULT '',
	clicks      TEXT NOT NULL DEFAULT '',
	conversions TEXT NOT NULL DEFAULT '',
	roi         TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS palette_items (
	id   INTEGER PRIMARY KEY,
	kind TEXT NOT NULL,
	name TEXT NOT NULL
);

INSERT INTO schema_version (version) VALUES (3);
`,
	},
}
