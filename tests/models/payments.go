package models

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/nrfta/seekpage/sqlboiler"
)

// Payment is the fixture row type for the keyset-pagination walk described
// in spec 8: a flat table, no associations, ordered by (charged_at, id).
type Payment struct {
	ID        string    `boil:"id" json:"id"`
	Amount    int64     `boil:"amount" json:"amount"`
	ChargedAt time.Time `boil:"charged_at" json:"charged_at"`
}

const (
	paymentTable   = "payments"
	paymentColumns = "id, amount, charged_at"
)

type paymentQuery struct {
	mods []qm.QueryMod
}

// Payments returns a new query against the payments table.
func Payments(mods ...qm.QueryMod) paymentQuery {
	return paymentQuery{mods: mods}
}

// All runs the query's WHERE/ORDER BY/LIMIT against exec.
//
// Unlike Users/Posts' All, this doesn't go through ParseQueryMods' string
// sniffing for WHERE: the cursor engine's seek predicate carries real bound
// args (sqlboiler.Query.AppendWhere), and fmt.Sprintf on the qm.QueryMod
// that wraps them has no defined form to parse. sqlboiler.WhereClause
// recovers the clause and args directly instead.
func (q paymentQuery) All(ctx context.Context, exec boil.ContextExecutor) ([]*Payment, error) {
	sqlText, args := q.build(paymentColumns)

	rows, err := exec.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*Payment
	for rows.Next() {
		p := &Payment{}
		if err := rows.Scan(&p.ID, &p.Amount, &p.ChargedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// Count returns the count of all Payment records matching the query's WHERE.
func (q paymentQuery) Count(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	where, args := q.whereClause()

	sqlText := fmt.Sprintf("SELECT count(*) FROM %s", paymentTable)
	if where != "" {
		sqlText += " WHERE " + where
	}

	var count int64
	err := exec.QueryRowContext(ctx, sqlText, args...).Scan(&count)
	return count, err
}

func (q paymentQuery) build(columns string) (string, []any) {
	where, args := q.whereClause()
	params := ParseQueryMods(q.mods)

	sqlText := fmt.Sprintf("SELECT %s FROM %s", columns, paymentTable)
	if where != "" {
		sqlText += " WHERE " + where
	}
	if params.OrderBy != "" {
		sqlText += " ORDER BY " + params.OrderBy
	}
	if params.Limit > 0 {
		sqlText += fmt.Sprintf(" LIMIT %d", params.Limit)
	}
	return sqlText, args
}

// whereClause AND-joins every WHERE mod this query carries -- the cursor
// engine calls AppendWhere at most twice (once per cursor side when both
// After and Before are set) and both conditions must hold together. Each
// clause is individually parenthesized before joining: BuildPredicate's own
// clause is already a top-level OR of AND-terms, so joining two such
// clauses with a bare AND would silently change precedence.
//
// "?" placeholders are renumbered to Postgres's "$n" form, in the order
// their owning clause appears.
func (q paymentQuery) whereClause() (string, []any) {
	var clauses []string
	var args []any
	for _, mod := range q.mods {
		clause, clauseArgs, ok := sqlboiler.WhereClause(mod)
		if !ok {
			continue
		}
		clauses = append(clauses, "("+renumberPlaceholders(clause, len(args))+")")
		args = append(args, clauseArgs...)
	}
	return strings.Join(clauses, " AND "), args
}

// renumberPlaceholders rewrites a clause's "?" placeholders into sequential
// "$n" Postgres positional parameters, continuing the count from startAt.
func renumberPlaceholders(clause string, startAt int) string {
	var b strings.Builder
	n := startAt
	for _, r := range clause {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
