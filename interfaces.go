package paging

import "context"

// Paginator is the core interface for all pagination strategies.
// Implementations include offset-based, keyset/cursor-based, and
// quota-fill pagination.
//
// Type parameter T is the item type being paginated (e.g., User, Post, Payment).
//
// Example implementations:
//   - offset.Paginator: traditional offset/limit pagination
//   - cursor.Paginator: keyset pagination (lexicographic seek predicate)
//   - quotafill.Wrapper: filtering-aware pagination built on top of either
type Paginator[T any] interface {
	// Paginate executes pagination and returns a page of results.
	// The PageArgs contain the page size (First) and cursor position
	// (After/Before).
	Paginate(ctx context.Context, args *PageArgs, opts ...PaginateOption) (*Page[T], error)
}

// Page represents a single page of paginated results.
type Page[T any] struct {
	// Nodes contains the items for this page.
	Nodes []T

	// PageInfo contains pagination metadata (hasNextPage, cursors, etc.)
	PageInfo *PageInfo

	// Metadata provides observability and debugging information.
	Metadata Metadata
}

// Metadata provides observability and debugging information about pagination execution.
type Metadata struct {
	// Strategy identifies which pagination strategy was used.
	// Values: "offset", "cursor", "quotafill".
	Strategy string

	// QueryTimeMs is the total time spent executing database queries.
	QueryTimeMs int64

	// ItemsExamined is the total number of items fetched from the database.
	// For quota-fill, this may be higher than the returned item count due to filtering.
	ItemsExamined int

	// IterationsUsed is the number of fetch iterations performed.
	// For simple pagination this is 1. For quota-fill it may be higher.
	IterationsUsed int

	// SafeguardHit indicates if a safeguard was triggered during quota-fill.
	// Values: nil (no safeguard), "max_iterations", "max_records", "timeout".
	SafeguardHit *string

	// Offset is the offset used to fetch this page, for offset-based
	// strategies. Zero for cursor/quotafill strategies.
	Offset int
}

// Fetcher abstracts database queries for any ORM or database layer so
// paginators aren't coupled to a specific one.
//
// Type parameter T is the database model type (e.g., *models.User from SQLBoiler).
type Fetcher[T any] interface {
	// Fetch retrieves items from storage based on the given parameters.
	Fetch(ctx context.Context, params FetchParams) ([]T, error)

	// Count returns the total number of items matching the filters (without
	// pagination). Strategies that don't need a count (keyset pagination)
	// may leave this unused.
	Count(ctx context.Context, params FetchParams) (int64, error)
}

// FetchParams contains all parameters needed to fetch a page of data.
type FetchParams struct {
	// Limit is the maximum number of items to fetch.
	Limit int

	// Offset is the number of items to skip (for offset-based pagination).
	Offset int

	// Cursor is the position marker for keyset pagination: the values of
	// the sort columns for the boundary row.
	Cursor *CursorPosition

	// Filters contains custom filter criteria, passed through to the
	// Fetcher implementation unchanged.
	Filters map[string]any

	// OrderBy specifies the sort order for results.
	OrderBy []Sort
}

// Sort is a single ORDER BY directive: a column and a direction.
type Sort struct {
	// Column is the name of the column to sort by. May be qualified with a
	// join alias ("posts.created_at").
	Column string

	// Desc indicates descending order. False means ascending.
	Desc bool
}

// CursorPosition encodes the pagination position for keyset strategies: the
// values of the sort columns for the boundary row.
//
// Example for sorting by (created_at DESC, id ASC):
//
//	CursorPosition{
//	    Values: map[string]any{
//	        "created_at": time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
//	        "id": "uuid-123",
//	    },
//	}
type CursorPosition struct {
	// Values maps column names to their values at the cursor position.
	Values map[string]any
}

// FilterFunc is a generic filter function for quota-fill pagination. It
// receives a batch of items and returns the subset that passes.
//
// Common use cases: authorization checks, soft-delete filtering, feature
// flags.
type FilterFunc[T any] func(ctx context.Context, items []T) ([]T, error)

// CursorEncoder handles cursor serialization for keyset pagination. It
// converts items into opaque cursor strings and decodes cursor strings back
// into CursorPosition values.
type CursorEncoder[T any] interface {
	// Encode creates an opaque cursor string from an item. Returns nil if
	// the item yields no boundary values.
	Encode(item T) (*string, error)

	// Decode extracts cursor position from an opaque cursor string. Returns
	// nil if the cursor is empty.
	Decode(cursor string) (*CursorPosition, error)
}
