package textutil_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/chrishsieh/pdfproparser/pkg/textutil"
)

var _ = Describe("Text cleaning", func() {
	DescribeTable("CleanText",
		func(input, expected string) {
			Expect(textutil.CleanText(input)).To(Equal(expected))
		},
		Entry("keeps CJK and drops latin noise", "abc中文 123", "中文"),
		Entry("collapses whitespace runs", "東坡  \t 詞", "東坡 詞"),
		Entry("keeps CJK punctuation", "大江東去，浪淘盡。", "大江東去，浪淘盡。"),
		Entry("drops ascii punctuation outside the keep set", "中文!@#$%", "中文"),
		Entry("trims surrounding whitespace", "  千古風流人物  ", "千古風流人物"),
		Entry("empty input", "", ""),
	)

	DescribeTable("CleanVertical",
		func(input, expected string) {
			Expect(textutil.CleanVertical(input)).To(Equal(expected))
		},
		Entry("preserves line structure", "大江東去\n浪淘盡", "大江東去\n浪淘盡"),
		Entry("strips inline whitespace inside columns", "大 江東去\n 浪 淘盡 ", "大江東去\n浪淘盡"),
		Entry("drops blank lines and latin noise", "大江A東去\n\nB\n浪淘盡\n", "大江東去\n浪淘盡"),
		Entry("empty input", "", ""),
	)

	DescribeTable("CleanPlain",
		func(input, expected string) {
			Expect(textutil.CleanPlain(input)).To(Equal(expected))
		},
		Entry("normalizes spaces within lines", "Hello   world\nfoo\tbar", "Hello world\nfoo bar"),
		Entry("drops blank lines", "one\n\n  \ntwo", "one\ntwo"),
		Entry("trims line edges", "  padded line  ", "padded line"),
	)
})

var _ = Describe("Text organization", func() {
	Describe("OrganizeLines", func() {
		It("returns trimmed non-empty lines", func() {
			lines := textutil.OrganizeLines("大江東去\n \n浪淘盡 \n")
			Expect(lines).To(Equal([]string{"大江東去", "浪淘盡"}))
		})

		It("returns nothing for blank input", func() {
			Expect(textutil.OrganizeLines(" \n \n")).To(BeEmpty())
		})
	})

	Describe("OrganizeParagraphs", func() {
		It("keeps long sentences as their own paragraphs", func() {
			long := "這是一個遠遠超過十五個字元長度的句子。"
			paragraphs := textutil.OrganizeParagraphs("短句。" + long + "又短。")
			Expect(paragraphs).To(Equal([]string{"短句。", long, "又短。"}))
		})

		It("merges consecutive short sentences", func() {
			paragraphs := textutil.OrganizeParagraphs("短句。又短。再短。")
			Expect(paragraphs).To(Equal([]string{"短句。又短。再短。"}))
		})

		It("keeps a trailing sentence without a terminator", func() {
			paragraphs := textutil.OrganizeParagraphs("無標點結尾")
			Expect(paragraphs).To(Equal([]string{"無標點結尾"}))
		})

		It("returns nothing for blank input", func() {
			Expect(textutil.OrganizeParagraphs("  ")).To(BeEmpty())
		})
	})
})
