package book

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/bookroll-dev/bookroll/internal/model"
)

// Mode selects how a book file is opened.
type Mode int

const (
	// ReadOnly opens an existing book for reading; Save is refused.
	ReadOnly Mode = iota
	// ReadWrite opens an existing book for reading and writing.
	ReadWrite
	// CreateNew creates a fresh book file; the file must not exist yet.
	CreateNew
)

// ErrExists is returned by Open in CreateNew mode when the target file is
// already present.
var ErrExists = errors.New("book file already exists")

const postDateLayout = "2006-01-02"

// Session is an exclusive handle on one book file. The whole book is loaded
// into memory on Open; Save writes it back in a single SQL transaction.
type Session struct {
	path string
	mode Mode
	db   *sql.DB
	book *Book
}

// Open opens the book file at path in the given mode.
func Open(path string, mode Mode) (*Session, error) {
	switch mode {
	case CreateNew:
		if _, err := os.Stat(path); err == nil {
			return nil, fmt.Errorf("%w: %s", ErrExists, path)
		}
	case ReadOnly, ReadWrite:
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("opening book %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unknown open mode %d", mode)
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", path)
	if mode == ReadOnly {
		dsn += "&mode=ro"
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening book %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening book %s: %w", path, err)
	}

	s := &Session{path: path, mode: mode, db: db}

	if mode == CreateNew {
		if _, err := db.Exec(schema); err != nil {
			db.Close()
			return nil, fmt.Errorf("initializing book schema: %w", err)
		}
		s.book = NewBook()
		if err := s.Save(); err != nil {
			db.Close()
			return nil, err
		}
		return s, nil
	}

	b, err := load(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("loading book %s: %w", path, err)
	}
	s.book = b
	return s, nil
}

// Path returns the book file path.
func (s *Session) Path() string { return s.path }

// Book returns the in-memory book held by this session.
func (s *Session) Book() *Book { return s.book }

// Close releases the underlying database handle without saving.
func (s *Session) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Save persists the in-memory book. Pending (uncommitted) transactions are
// not written; they are expected to be committed before the final save.
func (s *Session) Save() error {
	if s.mode == ReadOnly {
		return fmt.Errorf("book %s is open read-only", s.path)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("saving book: %w", err)
	}
	if err := save(tx, s.book); err != nil {
		tx.Rollback()
		return fmt.Errorf("saving book: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("saving book: %w", err)
	}
	return nil
}

func load(db *sql.DB) (*Book, error) {
	b := &Book{commodities: model.NewCommodityTable()}

	var rootGUID string
	if err := db.QueryRow(`SELECT guid, root_account_guid FROM books`).Scan(&b.GUID, &rootGUID); err != nil {
		return nil, fmt.Errorf("reading book row: %w", err)
	}

	commodities, err := loadCommodities(db, b.commodities)
	if err != nil {
		return nil, err
	}

	accounts, err := loadAccounts(db, commodities)
	if err != nil {
		return nil, err
	}
	root, ok := accounts[rootGUID]
	if !ok {
		return nil, fmt.Errorf("root account %s not found", rootGUID)
	}
	b.root = root

	if err := loadTransactions(db, b, accounts, commodities); err != nil {
		return nil, err
	}
	if err := loadEntities(db, b, commodities); err != nil {
		return nil, err
	}
	return b, nil
}

func loadCommodities(db *sql.DB, table *model.CommodityTable) (map[string]*model.Commodity, error) {
	rows, err := db.Query(`SELECT guid, namespace, mnemonic, fullname, fraction FROM commodities`)
	if err != nil {
		return nil, fmt.Errorf("reading commodities: %w", err)
	}
	defer rows.Close()

	byGUID := make(map[string]*model.Commodity)
	for rows.Next() {
		c := &model.Commodity{}
		if err := rows.Scan(&c.GUID, &c.Namespace, &c.Mnemonic, &c.FullName, &c.Fraction); err != nil {
			return nil, fmt.Errorf("scanning commodity: %w", err)
		}
		table.Insert(c)
		byGUID[c.GUID] = c
	}
	return byGUID, rows.Err()
}

func loadAccounts(db *sql.DB, commodities map[string]*model.Commodity) (map[string]*model.Account, error) {
	rows, err := db.Query(`SELECT guid, name, account_type, parent_guid, commodity_guid,
		code, description, notes, color, tax_related, placeholder, hidden FROM accounts`)
	if err != nil {
		return nil, fmt.Errorf("reading accounts: %w", err)
	}
	defer rows.Close()

	byGUID := make(map[string]*model.Account)
	parents := make(map[string]string)
	var order []string
	for rows.Next() {
		a := &model.Account{}
		var typ string
		var parentGUID, commodityGUID sql.NullString
		if err := rows.Scan(&a.GUID, &a.Name, &typ, &parentGUID, &commodityGUID,
			&a.Code, &a.Description, &a.Notes, &a.Color,
			&a.TaxRelated, &a.Placeholder, &a.Hidden); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}
		a.Type = model.AccountType(typ)
		if commodityGUID.Valid {
			a.Commodity = commodities[commodityGUID.String]
		}
		byGUID[a.GUID] = a
		if parentGUID.Valid && parentGUID.String != "" {
			parents[a.GUID] = parentGUID.String
		}
		order = append(order, a.GUID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, g := range order {
		parentGUID, ok := parents[g]
		if !ok {
			continue
		}
		parent, ok := byGUID[parentGUID]
		if !ok {
			return nil, fmt.Errorf("account %s references missing parent %s", g, parentGUID)
		}
		parent.AppendChild(byGUID[g])
	}
	return byGUID, nil
}

func loadTransactions(db *sql.DB, b *Book, accounts map[string]*model.Account, commodities map[string]*model.Commodity) error {
	rows, err := db.Query(`SELECT guid, currency_guid, post_date, description FROM transactions`)
	if err != nil {
		return fmt.Errorf("reading transactions: %w", err)
	}
	defer rows.Close()

	byGUID := make(map[string]*model.Transaction)
	for rows.Next() {
		t := &model.Transaction{}
		var currencyGUID, postDate string
		if err := rows.Scan(&t.GUID, &currencyGUID, &postDate, &t.Description); err != nil {
			return fmt.Errorf("scanning transaction: %w", err)
		}
		t.Currency = commodities[currencyGUID]
		t.PostDate, err = time.Parse(postDateLayout, postDate)
		if err != nil {
			return fmt.Errorf("transaction %s: parsing post date %q: %w", t.GUID, postDate, err)
		}
		byGUID[t.GUID] = t
		b.AppendTransaction(t)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	splitRows, err := db.Query(`SELECT guid, tx_guid, account_guid, memo,
		value_num, value_denom, quantity_num, quantity_denom FROM splits`)
	if err != nil {
		return fmt.Errorf("reading splits: %w", err)
	}
	defer splitRows.Close()

	for splitRows.Next() {
		s := &model.Split{}
		var txGUID, accountGUID string
		var vn, vd, qn, qd int64
		if err := splitRows.Scan(&s.GUID, &txGUID, &accountGUID, &s.Memo, &vn, &vd, &qn, &qd); err != nil {
			return fmt.Errorf("scanning split: %w", err)
		}
		t, ok := byGUID[txGUID]
		if !ok {
			return fmt.Errorf("split %s references missing transaction %s", s.GUID, txGUID)
		}
		s.Account, ok = accounts[accountGUID]
		if !ok {
			return fmt.Errorf("split %s references missing account %s", s.GUID, accountGUID)
		}
		if s.Value, err = decimalFromRat(vn, vd); err != nil {
			return fmt.Errorf("split %s value: %w", s.GUID, err)
		}
		if s.Quantity, err = decimalFromRat(qn, qd); err != nil {
			return fmt.Errorf("split %s quantity: %w", s.GUID, err)
		}
		t.AppendSplit(s)
	}
	if err := splitRows.Err(); err != nil {
		return err
	}

	// Stored transactions are committed by definition.
	for _, t := range byGUID {
		if err := t.Commit(); err != nil {
			return fmt.Errorf("loaded transaction does not balance: %w", err)
		}
	}
	return nil
}
