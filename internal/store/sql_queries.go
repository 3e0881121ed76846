package store

const (
	accountColumns = "id, username, password_hash, display_name, email, phone, extra, tokens"

	insertAccount = `INSERT INTO accounts (id, username, password_hash, display_name, email, phone, extra, tokens)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	findAccountByUsername = `SELECT id, username, password_hash, display_name, email, phone, extra, tokens
    FROM accounts
    WHERE username = $1;`

	replaceAccount = `UPDATE accounts SET
        username      = $1,
        password_hash = $2,
        display_name  = $3,
        email         = $4,
        phone         = $5,
        extra         = $6,
        tokens        = $7
    WHERE id = $8;`

	deleteAccountByUsername = `DELETE FROM accounts WHERE username = $1;`

	countAccounts = `SELECT COUNT(*) FROM accounts;`
)
