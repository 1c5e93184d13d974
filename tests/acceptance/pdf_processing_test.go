package acceptance_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/chrishsieh/pdfproparser/internal/config"
	"github.com/chrishsieh/pdfproparser/internal/parser"
	"github.com/chrishsieh/pdfproparser/internal/pdf"
	"github.com/chrishsieh/pdfproparser/internal/report"
	"github.com/chrishsieh/pdfproparser/pkg/logger"
	"github.com/chrishsieh/pdfproparser/pkg/models"
)

var _ = Describe("PDF processing end to end", func() {
	var (
		tempDir string
		docPath string
		outPath string
		cfg     *config.Config
		writer  *report.Writer
		log     *logger.Logger
		ctx     context.Context
	)

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "acceptance-test-*")
		Expect(err).NotTo(HaveOccurred())

		docPath = filepath.Join(tempDir, "scanned.pdf")
		outPath = filepath.Join(tempDir, "output.json")

		cfg = config.Default()
		cfg.DPI = 72 // keep page rendering cheap in tests

		log = logger.New(
			logger.WithOutput(GinkgoWriter),
			logger.WithPrefix("[acceptance] "),
			logger.WithFlags(0),
		)
		writer = report.NewWriter(log)
		ctx = context.Background()
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	runPipeline := func(variant parser.Variant, engine *stubEngine) *models.Report {
		doc, err := pdf.Open(docPath, cfg.DPI)
		Expect(err).NotTo(HaveOccurred())
		defer doc.Close()

		rep, err := parser.New(engine, variant, cfg, log).Parse(ctx, doc)
		Expect(err).NotTo(HaveOccurred())
		Expect(writer.Write(rep, outPath)).To(Succeed())
		return rep
	}

	Context("a scanned document with no text layer", func() {
		BeforeEach(func() {
			Expect(writeTestPDF(docPath, 3)).To(Succeed())
		})

		It("produces one OCR entry per page, in page order", func() {
			engine := &stubEngine{textByID: map[string]string{
				"page-1": "大江東去\n浪淘盡",
				"page-2": "千古風流人物",
				"page-3": "故壘西邊",
			}}

			rep := runPipeline(parser.ChineseVertical(), engine)

			Expect(rep.Metadata.PageCount).To(Equal(3))
			Expect(rep.Pages).To(HaveLen(3))
			for i, page := range rep.Pages {
				Expect(page.Page).To(Equal(i + 1))
				Expect(page.OCRContent).To(HaveLen(1))
			}
			Expect(rep.Pages[0].OCRContent[0].Content).To(Equal([]string{"大江東去", "浪淘盡"}))
			Expect(engine.calls).To(Equal(3))
		})

		It("writes a JSON artifact that parses back into the same report", func() {
			engine := &stubEngine{textByID: map[string]string{
				"page-1": "one", "page-2": "two", "page-3": "three",
			}}

			rep := runPipeline(parser.English(), engine)

			data, err := os.ReadFile(outPath)
			Expect(err).NotTo(HaveOccurred())

			var decoded models.Report
			Expect(json.Unmarshal(data, &decoded)).To(Succeed())
			Expect(&decoded).To(Equal(rep))

			txt, err := os.ReadFile(filepath.Join(tempDir, "output.txt"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(txt)).To(ContainSubstring("one"))
		})

		It("overwrites artifacts on re-run instead of appending", func() {
			engine := &stubEngine{textByID: map[string]string{
				"page-1": "first run", "page-2": "first run", "page-3": "first run",
			}}
			runPipeline(parser.English(), engine)

			firstSize := fileSize(outPath)

			engine = &stubEngine{textByID: map[string]string{
				"page-1": "second run", "page-2": "second run", "page-3": "second run",
			}}
			runPipeline(parser.English(), engine)

			data, err := os.ReadFile(outPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring("second run"))
			Expect(string(data)).NotTo(ContainSubstring("first run"))
			Expect(fileSize(outPath)).To(BeNumerically("~", firstSize, 16))
		})
	})

	Context("a missing input file", func() {
		It("fails with the input-not-found kind", func() {
			_, err := pdf.Open(filepath.Join(tempDir, "nope.pdf"), cfg.DPI)
			Expect(err).To(MatchError(pdf.ErrNotFound))
		})
	})
})

func fileSize(path string) int64 {
	info, err := os.Stat(path)
	Expect(err).NotTo(HaveOccurred())
	return info.Size()
}
