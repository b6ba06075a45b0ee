package database

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates the tables and indexes on startup so the binary is
// self-contained against a fresh database.
func EnsureSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS subscribers (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		source TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS trial_signups (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL DEFAULT '',
		business_name TEXT NOT NULL DEFAULT '',
		email TEXT UNIQUE NOT NULL,
		phone TEXT NOT NULL,
		industry TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'new',
		notes TEXT NOT NULL DEFAULT '',
		assigned_to TEXT NOT NULL DEFAULT '',
		follow_up_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS clients (
		id TEXT PRIMARY KEY,
		trial_id TEXT NOT NULL DEFAULT '',
		business_name TEXT NOT NULL,
		contact_name TEXT NOT NULL DEFAULT '',
		email TEXT UNIQUE NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		industry TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		service_area TEXT NOT NULL DEFAULT '',
		plan TEXT NOT NULL DEFAULT '',
		plan_price NUMERIC NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'trial',
		dashboard_token TEXT UNIQUE NOT NULL,
		whop_membership_id TEXT NOT NULL DEFAULT '',
		whop_user_id TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS capture_pages (
		id TEXT PRIMARY KEY,
		client_id TEXT NOT NULL REFERENCES clients(id),
		slug TEXT UNIQUE NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		industry TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'active',
		views INTEGER NOT NULL DEFAULT 0,
		submissions INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS leads (
		id TEXT PRIMARY KEY,
		client_id TEXT REFERENCES clients(id),
		capture_page TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		postal_code TEXT NOT NULL DEFAULT '',
		service TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL DEFAULT '',
		utm_source TEXT NOT NULL DEFAULT '',
		utm_medium TEXT NOT NULL DEFAULT '',
		utm_campaign TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'new',
		contacted_at TIMESTAMPTZ,
		booked_at TIMESTAMPTZ,
		job_value NUMERIC,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS lead_activities (
		id TEXT PRIMARY KEY,
		lead_id TEXT NOT NULL REFERENCES leads(id),
		action TEXT NOT NULL,
		details JSONB,
		actor TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS email_log (
		id TEXT PRIMARY KEY,
		recipient TEXT NOT NULL,
		subject TEXT NOT NULL,
		template TEXT NOT NULL,
		status TEXT NOT NULL,
		error TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_leads_client_id ON leads(client_id);
	CREATE INDEX IF NOT EXISTS idx_leads_status ON leads(status);
	CREATE INDEX IF NOT EXISTS idx_leads_created_at ON leads(created_at);
	CREATE INDEX IF NOT EXISTS idx_lead_activities_lead_id ON lead_activities(lead_id);
	CREATE INDEX IF NOT EXISTS idx_clients_dashboard_token ON clients(dashboard_token);
	CREATE INDEX IF NOT EXISTS idx_capture_pages_slug ON capture_pages(slug);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}
