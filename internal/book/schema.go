package book

// schema is the DDL for a new book file. Amount columns are exact
// num/denom pairs; booleans are stored as 0/1 integers.
const schema = `
CREATE TABLE IF NOT EXISTS books (
	guid              TEXT PRIMARY KEY,
	root_account_guid TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS commodities (
	guid      TEXT PRIMARY KEY,
	namespace TEXT NOT NULL,
	mnemonic  TEXT NOT NULL,
	fullname  TEXT NOT NULL DEFAULT '',
	fraction  INTEGER NOT NULL DEFAULT 100,
	UNIQUE (namespace, mnemonic)
);

CREATE TABLE IF NOT EXISTS accounts (
	guid           TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	account_type   TEXT NOT NULL,
	parent_guid    TEXT,
	commodity_guid TEXT,
	code           TEXT NOT NULL DEFAULT '',
	description    TEXT NOT NULL DEFAULT '',
	notes          TEXT NOT NULL DEFAULT '',
	color          TEXT NOT NULL DEFAULT '',
	tax_related    INTEGER NOT NULL DEFAULT 0,
	placeholder    INTEGER NOT NULL DEFAULT 0,
	hidden         INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS transactions (
	guid          TEXT PRIMARY KEY,
	currency_guid TEXT NOT NULL,
	post_date     TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS splits (
	guid           TEXT PRIMARY KEY,
	tx_guid        TEXT NOT NULL,
	account_guid   TEXT NOT NULL,
	memo           TEXT NOT NULL DEFAULT '',
	value_num      INTEGER NOT NULL,
	value_denom    INTEGER NOT NULL,
	quantity_num   INTEGER NOT NULL,
	quantity_denom INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS vendors (
	guid          TEXT PRIMARY KEY,
	id            TEXT NOT NULL DEFAULT '',
	name          TEXT NOT NULL,
	active        INTEGER NOT NULL DEFAULT 1,
	currency_guid TEXT,
	addr_name     TEXT NOT NULL DEFAULT '',
	addr_addr1    TEXT NOT NULL DEFAULT '',
	addr_addr2    TEXT NOT NULL DEFAULT '',
	addr_addr3    TEXT NOT NULL DEFAULT '',
	addr_addr4    TEXT NOT NULL DEFAULT '',
	addr_phone    TEXT NOT NULL DEFAULT '',
	addr_email    TEXT NOT NULL DEFAULT '',
	notes         TEXT NOT NULL DEFAULT '',
	tax_included  INTEGER NOT NULL DEFAULT 0,
	terms         TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS customers (
	guid           TEXT PRIMARY KEY,
	id             TEXT NOT NULL DEFAULT '',
	name           TEXT NOT NULL,
	active         INTEGER NOT NULL DEFAULT 1,
	currency_guid  TEXT,
	addr_name      TEXT NOT NULL DEFAULT '',
	addr_addr1     TEXT NOT NULL DEFAULT '',
	addr_addr2     TEXT NOT NULL DEFAULT '',
	addr_addr3     TEXT NOT NULL DEFAULT '',
	addr_addr4     TEXT NOT NULL DEFAULT '',
	addr_phone     TEXT NOT NULL DEFAULT '',
	addr_email     TEXT NOT NULL DEFAULT '',
	notes          TEXT NOT NULL DEFAULT '',
	discount_num   INTEGER NOT NULL DEFAULT 0,
	discount_denom INTEGER NOT NULL DEFAULT 1,
	credit_num     INTEGER NOT NULL DEFAULT 0,
	credit_denom   INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS employees (
	guid          TEXT PRIMARY KEY,
	id            TEXT NOT NULL DEFAULT '',
	name          TEXT NOT NULL,
	active        INTEGER NOT NULL DEFAULT 1,
	currency_guid TEXT,
	addr_name     TEXT NOT NULL DEFAULT '',
	addr_addr1    TEXT NOT NULL DEFAULT '',
	addr_addr2    TEXT NOT NULL DEFAULT '',
	addr_addr3    TEXT NOT NULL DEFAULT '',
	addr_addr4    TEXT NOT NULL DEFAULT '',
	addr_phone    TEXT NOT NULL DEFAULT '',
	addr_email    TEXT NOT NULL DEFAULT '',
	username      TEXT NOT NULL DEFAULT '',
	rate_num      INTEGER NOT NULL DEFAULT 0,
	rate_denom    INTEGER NOT NULL DEFAULT 1
);

CREATE INDEX IF NOT EXISTS idx_accounts_parent ON accounts (parent_guid);
CREATE INDEX IF NOT EXISTS idx_splits_tx ON splits (tx_guid);
CREATE INDEX IF NOT EXISTS idx_splits_account ON splits (account_guid);
`
