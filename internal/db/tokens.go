package db

import "context"

// WasConsumed reports whether the exact token string has been recorded
// in the used-token ledger. Marking tokens used is the issuer's job;
// this side only ever reads.
func (db *Postgres) WasConsumed(ctx context.Context, token string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM used_tokens WHERE token = $1)`
	var used bool
	if err := db.Pool.QueryRow(ctx, query, token).Scan(&used); err != nil {
		return false, err
	}
	return used, nil
}
