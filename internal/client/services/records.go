package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/calcfront/internal/client/api"
	"github.com/dmitrijs2005/calcfront/internal/client/models"
	"github.com/dmitrijs2005/calcfront/internal/client/session"
)

// DefaultPerPage is the fixed page size of the records view.
const DefaultPerPage = 5

// PageRangeError reports a jump to a page outside 1..TotalPages.
type PageRangeError struct {
	Page       int
	TotalPages int
}

func (e *PageRangeError) Error() string {
	return fmt.Sprintf("page %d is out of range (1-%d)", e.Page, e.TotalPages)
}

// RecordNotOnPageError reports a delete for an id absent from the fetched page.
type RecordNotOnPageError struct {
	ID int64
}

func (e *RecordNotOnPageError) Error() string {
	return fmt.Sprintf("record %d is not on the current page", e.ID)
}

// Browser drives the records view. The server does the pagination and the
// sorting; the browser holds exactly one fetched page plus the transient UI
// state (current page, sort, search query). The free-text filter is applied
// client-side to the fetched page only — a deliberate scope limitation.
type Browser struct {
	client api.Client
	store  *session.Store

	perPage      int
	page         int
	sort         models.Sort
	query        string
	records      []models.Record
	totalRecords int
}

func NewBrowser(client api.Client, store *session.Store) *Browser {
	return &Browser{
		client:  client,
		store:   store,
		perPage: DefaultPerPage,
		page:    1,
		sort:    models.DefaultSort(),
	}
}

// Refresh fetches the current page from the server with the active sort.
func (b *Browser) Refresh(ctx context.Context) error {
	st := b.store.State()
	if !st.LoggedIn() {
		return ErrNotAuthenticated
	}

	page, err := b.client.ListRecords(ctx, *st.AccessToken, b.page, b.perPage, b.sort)
	if err != nil {
		return err
	}

	b.records = page.Records
	b.totalRecords = page.TotalRecords
	return nil
}

// Page returns the current 1-indexed page number.
func (b *Browser) Page() int { return b.page }

// Sort returns the active sort specification.
func (b *Browser) Sort() models.Sort { return b.sort }

// TotalRecords returns the server-reported total.
func (b *Browser) TotalRecords() int { return b.totalRecords }

// TotalPages derives the page count from the server-reported total.
func (b *Browser) TotalPages() int {
	if b.totalRecords <= 0 {
		return 0
	}
	return (b.totalRecords + b.perPage - 1) / b.perPage
}

// ToggleSort activates the given sort field. Toggling the already-active
// field flips the order ASC↔DESC; switching fields resets to ASC. The new
// sort takes effect with a re-fetch.
func (b *Browser) ToggleSort(ctx context.Context, field models.SortField) error {
	if b.sort.Field == field && b.sort.Order == models.SortAsc {
		b.sort.Order = models.SortDesc
	} else {
		b.sort = models.Sort{Field: field, Order: models.SortAsc}
	}
	return b.Refresh(ctx)
}

// NextPage advances one page. At the last page it is a no-op.
func (b *Browser) NextPage(ctx context.Context) error {
	if b.page >= b.TotalPages() {
		return nil
	}
	b.page++
	return b.Refresh(ctx)
}

// PrevPage goes back one page. At page 1 it is a no-op.
func (b *Browser) PrevPage(ctx context.Context) error {
	if b.page <= 1 {
		return nil
	}
	b.page--
	return b.Refresh(ctx)
}

// GoToPage jumps directly to page n.
func (b *Browser) GoToPage(ctx context.Context, n int) error {
	if n < 1 || n > b.TotalPages() {
		return &PageRangeError{Page: n, TotalPages: b.TotalPages()}
	}
	if n == b.page {
		return nil
	}
	b.page = n
	return b.Refresh(ctx)
}

// SetQuery sets the free-text filter. No fetch happens; the filter is local.
func (b *Browser) SetQuery(query string) {
	b.query = query
}

// Query returns the active free-text filter.
func (b *Browser) Query() string { return b.query }

// Visible returns the fetched page filtered by the search query. A record
// matches when the query is a case-insensitive substring of its operation
// type, its stringified result, or its raw creation timestamp.
func (b *Browser) Visible() []models.Record {
	if b.query == "" {
		return b.records
	}

	q := strings.ToLower(b.query)
	out := make([]models.Record, 0, len(b.records))
	for _, r := range b.records {
		if strings.Contains(strings.ToLower(string(r.Operation.Type)), q) ||
			strings.Contains(strings.ToLower(r.OperationResponse.String()), q) ||
			strings.Contains(strings.ToLower(r.CreatedAt), q) {
			out = append(out, r)
		}
	}
	return out
}

// Delete removes the record with the given id on the server, drops it from
// the fetched page, and adds its amount back onto the session balance.
//
// The balance reconciliation deliberately trusts client-held arithmetic
// instead of re-fetching the server's balance: one fewer round trip, at the
// cost of possible drift if another session mutates the account concurrently.
func (b *Browser) Delete(ctx context.Context, id int64) error {
	st := b.store.State()
	if !st.LoggedIn() {
		return ErrNotAuthenticated
	}

	var deleted *models.Record
	for i := range b.records {
		if b.records[i].ID == id {
			deleted = &b.records[i]
			break
		}
	}
	if deleted == nil {
		return &RecordNotOnPageError{ID: id}
	}

	if err := b.client.DeleteOperation(ctx, id, *st.AccessToken); err != nil {
		return err
	}

	kept := make([]models.Record, 0, len(b.records)-1)
	for _, r := range b.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	b.records = kept
	b.totalRecords--

	if st.Balance != nil {
		current, err := decimal.NewFromString(*st.Balance)
		if err != nil {
			return fmt.Errorf("stored balance %q: %w", *st.Balance, err)
		}
		next := current.Add(deleted.Amount.Decimal)
		// Decimal.String trims trailing zeros, so render at the wider of the
		// two input scales to keep "10.00" + 3.50 at "13.50".
		places := -current.Exponent()
		if p := -deleted.Amount.Exponent(); p > places {
			places = p
		}
		if places < 0 {
			places = 0
		}
		if err := b.store.Dispatch(ctx, session.UpdateBalance{Balance: next.StringFixed(places)}); err != nil {
			return err
		}
	}
	return nil
}
