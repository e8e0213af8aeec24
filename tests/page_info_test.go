package paging_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nrfta/seekpage"
)

var _ = Describe("NewEmptyPageInfo", func() {
	It("creates an empty page info", func() {
		pageInfo := paging.NewEmptyPageInfo()

		totalCount, _ := pageInfo.TotalCount()
		Expect(totalCount).To(BeNil())

		hasNextPage, _ := pageInfo.HasNextPage()
		Expect(hasNextPage).To(Equal(false))

		hasPreviousPage, _ := pageInfo.HasPreviousPage()
		Expect(hasPreviousPage).To(Equal(false))

		startCursor, _ := pageInfo.StartCursor()
		Expect(startCursor).To(BeNil())

		endCursor, _ := pageInfo.EndCursor()
		Expect(endCursor).To(BeNil())
	})
})
