package book

import (
	"database/sql"
	"fmt"

	"github.com/bookroll-dev/bookroll/internal/model"
)

// save replaces the persisted book with the in-memory state. Running inside
// one SQL transaction keeps a crashed save from half-updating the file.
func save(tx *sql.Tx, b *Book) error {
	for _, table := range []string{"books", "commodities", "accounts", "transactions", "splits", "vendors", "customers", "employees"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if _, err := tx.Exec(`INSERT INTO books (guid, root_account_guid) VALUES (?, ?)`,
		b.GUID, b.root.GUID); err != nil {
		return fmt.Errorf("writing book row: %w", err)
	}

	for _, c := range b.commodities.All() {
		if _, err := tx.Exec(`INSERT INTO commodities (guid, namespace, mnemonic, fullname, fraction)
			VALUES (?, ?, ?, ?, ?)`,
			c.GUID, c.Namespace, c.Mnemonic, c.FullName, c.Fraction); err != nil {
			return fmt.Errorf("writing commodity %s:%s: %w", c.Namespace, c.Mnemonic, err)
		}
	}

	var saveErr error
	b.root.Walk(func(a *model.Account) {
		if saveErr != nil {
			return
		}
		var parentGUID, commodityGUID sql.NullString
		if a.Parent != nil {
			parentGUID = sql.NullString{String: a.Parent.GUID, Valid: true}
		}
		if a.Commodity != nil {
			commodityGUID = sql.NullString{String: a.Commodity.GUID, Valid: true}
		}
		if _, err := tx.Exec(`INSERT INTO accounts (guid, name, account_type, parent_guid,
			commodity_guid, code, description, notes, color, tax_related, placeholder, hidden)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.GUID, a.Name, string(a.Type), parentGUID, commodityGUID,
			a.Code, a.Description, a.Notes, a.Color,
			a.TaxRelated, a.Placeholder, a.Hidden); err != nil {
			saveErr = fmt.Errorf("writing account %s: %w", a.FullName(), err)
		}
	})
	if saveErr != nil {
		return saveErr
	}

	for _, t := range b.transactions {
		if !t.Committed() {
			continue
		}
		if err := saveTransaction(tx, t); err != nil {
			return err
		}
	}

	return saveEntities(tx, b)
}

func saveTransaction(tx *sql.Tx, t *model.Transaction) error {
	if _, err := tx.Exec(`INSERT INTO transactions (guid, currency_guid, post_date, description)
		VALUES (?, ?, ?, ?)`,
		t.GUID, t.Currency.GUID, t.PostDate.Format(postDateLayout), t.Description); err != nil {
		return fmt.Errorf("writing transaction %s: %w", t.GUID, err)
	}
	for _, s := range t.Splits {
		vn, vd, err := ratFromDecimal(s.Value, t.Currency.Fraction)
		if err != nil {
			return fmt.Errorf("split %s value: %w", s.GUID, err)
		}
		fraction := int64(0)
		if s.Account.Commodity != nil {
			fraction = s.Account.Commodity.Fraction
		}
		qn, qd, err := ratFromDecimal(s.Quantity, fraction)
		if err != nil {
			return fmt.Errorf("split %s quantity: %w", s.GUID, err)
		}
		if _, err := tx.Exec(`INSERT INTO splits (guid, tx_guid, account_guid, memo,
			value_num, value_denom, quantity_num, quantity_denom)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			s.GUID, t.GUID, s.Account.GUID, s.Memo, vn, vd, qn, qd); err != nil {
			return fmt.Errorf("writing split %s: %w", s.GUID, err)
		}
	}
	return nil
}

func saveEntities(tx *sql.Tx, b *Book) error {
	for _, v := range b.vendors {
		if _, err := tx.Exec(`INSERT INTO vendors (guid, id, name, active, currency_guid,
			addr_name, addr_addr1, addr_addr2, addr_addr3, addr_addr4, addr_phone, addr_email,
			notes, tax_included, terms)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			v.GUID, v.ID, v.Name, v.Active, currencyGUID(v.Currency),
			v.Addr.Name, v.Addr.Addr1, v.Addr.Addr2, v.Addr.Addr3, v.Addr.Addr4,
			v.Addr.Phone, v.Addr.Email,
			v.Notes, v.TaxIncluded, v.Terms); err != nil {
			return fmt.Errorf("writing vendor %s: %w", v.Name, err)
		}
	}
	for _, c := range b.customers {
		dn, dd, err := ratFromDecimal(c.Discount, 1)
		if err != nil {
			return fmt.Errorf("customer %s discount: %w", c.Name, err)
		}
		cn, cd, err := ratFromDecimal(c.Credit, 1)
		if err != nil {
			return fmt.Errorf("customer %s credit: %w", c.Name, err)
		}
		if _, err := tx.Exec(`INSERT INTO customers (guid, id, name, active, currency_guid,
			addr_name, addr_addr1, addr_addr2, addr_addr3, addr_addr4, addr_phone, addr_email,
			notes, discount_num, discount_denom, credit_num, credit_denom)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.GUID, c.ID, c.Name, c.Active, currencyGUID(c.Currency),
			c.Addr.Name, c.Addr.Addr1, c.Addr.Addr2, c.Addr.Addr3, c.Addr.Addr4,
			c.Addr.Phone, c.Addr.Email,
			c.Notes, dn, dd, cn, cd); err != nil {
			return fmt.Errorf("writing customer %s: %w", c.Name, err)
		}
	}
	for _, e := range b.employees {
		rn, rd, err := ratFromDecimal(e.Rate, 1)
		if err != nil {
			return fmt.Errorf("employee %s rate: %w", e.Name, err)
		}
		if _, err := tx.Exec(`INSERT INTO employees (guid, id, name, active, currency_guid,
			addr_name, addr_addr1, addr_addr2, addr_addr3, addr_addr4, addr_phone, addr_email,
			username, rate_num, rate_denom)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.GUID, e.ID, e.Name, e.Active, currencyGUID(e.Currency),
			e.Addr.Name, e.Addr.Addr1, e.Addr.Addr2, e.Addr.Addr3, e.Addr.Addr4,
			e.Addr.Phone, e.Addr.Email,
			e.Username, rn, rd); err != nil {
			return fmt.Errorf("writing employee %s: %w", e.Name, err)
		}
	}
	return nil
}

func currencyGUID(c *model.Commodity) sql.NullString {
	if c == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: c.GUID, Valid: true}
}

func loadEntities(db *sql.DB, b *Book, commodities map[string]*model.Commodity) error {
	rows, err := db.Query(`SELECT guid, id, name, active, currency_guid,
		addr_name, addr_addr1, addr_addr2, addr_addr3, addr_addr4, addr_phone, addr_email,
		notes, tax_included, terms FROM vendors`)
	if err != nil {
		return fmt.Errorf("reading vendors: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		v := &model.Vendor{}
		var currency sql.NullString
		if err := rows.Scan(&v.GUID, &v.ID, &v.Name, &v.Active, &currency,
			&v.Addr.Name, &v.Addr.Addr1, &v.Addr.Addr2, &v.Addr.Addr3, &v.Addr.Addr4,
			&v.Addr.Phone, &v.Addr.Email,
			&v.Notes, &v.TaxIncluded, &v.Terms); err != nil {
			return fmt.Errorf("scanning vendor: %w", err)
		}
		if currency.Valid {
			v.Currency = commodities[currency.String]
		}
		b.AddVendor(v)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	custRows, err := db.Query(`SELECT guid, id, name, active, currency_guid,
		addr_name, addr_addr1, addr_addr2, addr_addr3, addr_addr4, addr_phone, addr_email,
		notes, discount_num, discount_denom, credit_num, credit_denom FROM customers`)
	if err != nil {
		return fmt.Errorf("reading customers: %w", err)
	}
	defer custRows.Close()
	for custRows.Next() {
		c := &model.Customer{}
		var currency sql.NullString
		var dn, dd, cn, cd int64
		if err := custRows.Scan(&c.GUID, &c.ID, &c.Name, &c.Active, &currency,
			&c.Addr.Name, &c.Addr.Addr1, &c.Addr.Addr2, &c.Addr.Addr3, &c.Addr.Addr4,
			&c.Addr.Phone, &c.Addr.Email,
			&c.Notes, &dn, &dd, &cn, &cd); err != nil {
			return fmt.Errorf("scanning customer: %w", err)
		}
		if currency.Valid {
			c.Currency = commodities[currency.String]
		}
		if c.Discount, err = decimalFromRat(dn, dd); err != nil {
			return fmt.Errorf("customer %s discount: %w", c.Name, err)
		}
		if c.Credit, err = decimalFromRat(cn, cd); err != nil {
			return fmt.Errorf("customer %s credit: %w", c.Name, err)
		}
		b.AddCustomer(c)
	}
	if err := custRows.Err(); err != nil {
		return err
	}

	empRows, err := db.Query(`SELECT guid, id, name, active, currency_guid,
		addr_name, addr_addr1, addr_addr2, addr_addr3, addr_addr4, addr_phone, addr_email,
		username, rate_num, rate_denom FROM employees`)
	if err != nil {
		return fmt.Errorf("reading employees: %w", err)
	}
	defer empRows.Close()
	for empRows.Next() {
		e := &model.Employee{}
		var currency sql.NullString
		var rn, rd int64
		if err := empRows.Scan(&e.GUID, &e.ID, &e.Name, &e.Active, &currency,
			&e.Addr.Name, &e.Addr.Addr1, &e.Addr.Addr2, &e.Addr.Addr3, &e.Addr.Addr4,
			&e.Addr.Phone, &e.Addr.Email,
			&e.Username, &rn, &rd); err != nil {
			return fmt.Errorf("scanning employee: %w", err)
		}
		if currency.Valid {
			e.Currency = commodities[currency.String]
		}
		if e.Rate, err = decimalFromRat(rn, rd); err != nil {
			return fmt.Errorf("employee %s rate: %w", e.Name, err)
		}
		b.AddEmployee(e)
	}
	return empRows.Err()
}
