package paging_test

import (
	"context"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/nrfta/seekpage"
	"github.com/nrfta/seekpage/offset"
	"github.com/nrfta/seekpage/sqlboiler"
	"github.com/nrfta/seekpage/tests/models"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Offset Pagination Integration Tests", func() {
	var userIDs []string

	BeforeEach(func() {
		// Clean tables before each test
		err := CleanupTables(ctx, container.DB)
		Expect(err).ToNot(HaveOccurred())

		// Seed test data
		userIDs, err = SeedUsers(ctx, container.DB, 25)
		Expect(err).ToNot(HaveOccurred())
		Expect(userIDs).To(HaveLen(25))
	})

	userFetcher := func() paging.Fetcher[*models.User] {
		return sqlboiler.NewFetcher(
			func(ctx context.Context, mods ...qm.QueryMod) ([]*models.User, error) {
				return models.Users(mods...).All(ctx, container.DB)
			},
			func(ctx context.Context, mods ...qm.QueryMod) (int64, error) {
				return models.Users(mods...).Count(ctx, container.DB)
			},
			sqlboiler.OffsetToQueryMods,
		)
	}

	Describe("Basic Offset Pagination", func() {
		It("should paginate users with default page size using SQLBoiler", func() {
			paginator := offset.New(userFetcher())

			first := 10
			pageArgs := paging.WithSortBy(&paging.PageArgs{First: &first}, "created_at", true)
			page, err := paginator.Paginate(ctx, pageArgs)
			Expect(err).ToNot(HaveOccurred())

			Expect(page.Nodes).To(HaveLen(10))

			hasNext, err := page.PageInfo.HasNextPage()
			Expect(err).ToNot(HaveOccurred())
			Expect(hasNext).To(BeTrue())

			hasPrev, err := page.PageInfo.HasPreviousPage()
			Expect(err).ToNot(HaveOccurred())
			Expect(hasPrev).To(BeFalse())

			total, err := page.PageInfo.TotalCount()
			Expect(err).ToNot(HaveOccurred())
			Expect(*total).To(Equal(25))
		})

		It("should paginate to second page", func() {
			paginator := offset.New(userFetcher())

			first := 10
			pageArgs := paging.WithSortBy(&paging.PageArgs{
				First: &first,
				After: offset.EncodeCursor(10), // after first 10 records
			}, "created_at", true)

			page, err := paginator.Paginate(ctx, pageArgs)
			Expect(err).ToNot(HaveOccurred())

			Expect(page.Nodes).To(HaveLen(10))

			hasNext, _ := page.PageInfo.HasNextPage()
			Expect(hasNext).To(BeTrue())

			hasPrev, _ := page.PageInfo.HasPreviousPage()
			Expect(hasPrev).To(BeTrue())
		})

		It("should handle last page correctly", func() {
			paginator := offset.New(userFetcher())

			first := 10
			pageArgs := paging.WithSortBy(&paging.PageArgs{
				First: &first,
				After: offset.EncodeCursor(20), // after 20 records, should get last 5
			}, "created_at", true)

			page, err := paginator.Paginate(ctx, pageArgs)
			Expect(err).ToNot(HaveOccurred())

			// Last page has 5 items (25 total - 20 offset)
			Expect(page.Nodes).To(HaveLen(5))

			hasNext, _ := page.PageInfo.HasNextPage()
			Expect(hasNext).To(BeFalse())

			hasPrev, _ := page.PageInfo.HasPreviousPage()
			Expect(hasPrev).To(BeTrue())
		})
	})

	Describe("Custom Sorting", func() {
		It("should sort by email ascending", func() {
			paginator := offset.New(userFetcher())

			first := 5
			pageArgs := paging.WithSortBy(&paging.PageArgs{First: &first}, "email", false)
			page, err := paginator.Paginate(ctx, pageArgs)
			Expect(err).ToNot(HaveOccurred())

			Expect(page.Nodes).To(HaveLen(5))
			// Verify sorted order (user1@, user10@, user11@, ...)
			Expect(page.Nodes[0].Email).To(HaveSuffix("@example.com"))
		})
	})

	Describe("Large Dataset Performance", func() {
		It("should handle 100 users efficiently", func() {
			// Clean and seed larger dataset
			err := CleanupTables(ctx, container.DB)
			Expect(err).ToNot(HaveOccurred())

			userIDs, err := SeedUsers(ctx, container.DB, 100)
			Expect(err).ToNot(HaveOccurred())
			Expect(userIDs).To(HaveLen(100))

			paginator := offset.New(userFetcher())

			// Paginate through all pages
			pageSize := 25
			pageArgs := paging.WithSortBy(&paging.PageArgs{First: &pageSize}, "created_at", true)

			for page := 0; page < 4; page++ {
				result, err := paginator.Paginate(ctx, pageArgs)
				Expect(err).ToNot(HaveOccurred())
				Expect(result.Nodes).To(HaveLen(25))

				// Advance cursor for next page
				if page < 3 {
					pageArgs.After = offset.EncodeCursor((page + 1) * pageSize)
				}
			}
		})
	})

	Describe("Posts with Relationships", func() {
		BeforeEach(func() {
			// Seed posts for users
			_, err := SeedPosts(ctx, container.DB, userIDs, 3)
			Expect(err).ToNot(HaveOccurred())
		})

		It("should paginate posts with published filter", func() {
			// Create fetcher with WHERE filter
			fetcher := sqlboiler.NewFetcher(
				func(ctx context.Context, mods ...qm.QueryMod) ([]*models.Post, error) {
					mods = append([]qm.QueryMod{qm.Where("published_at IS NOT NULL")}, mods...)
					return models.Posts(mods...).All(ctx, container.DB)
				},
				func(ctx context.Context, mods ...qm.QueryMod) (int64, error) {
					mods = append([]qm.QueryMod{qm.Where("published_at IS NOT NULL")}, mods...)
					return models.Posts(mods...).Count(ctx, container.DB)
				},
				sqlboiler.OffsetToQueryMods,
			)
			paginator := offset.New(fetcher)

			first := 10
			pageArgs := paging.WithSortBy(&paging.PageArgs{First: &first}, "published_at", true)
			page, err := paginator.Paginate(ctx, pageArgs)
			Expect(err).ToNot(HaveOccurred())

			Expect(page.Nodes).To(HaveLen(10))
			// Verify all posts are published
			for _, post := range page.Nodes {
				Expect(post.PublishedAt).ToNot(BeNil())
			}

			hasNext, _ := page.PageInfo.HasNextPage()
			Expect(hasNext).To(BeTrue()) // 25 users * 3 posts * 2/3 published = 50 posts
		})
	})
})
