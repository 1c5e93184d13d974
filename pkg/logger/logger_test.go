package logger_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/chrishsieh/pdfproparser/pkg/logger"
)

var _ = Describe("Logger", func() {
	var buf bytes.Buffer

	BeforeEach(func() {
		buf.Reset()
	})

	It("tags lines with the tool-suite prefix by default", func() {
		log := logger.New(logger.WithOutput(&buf), logger.WithFlags(0))
		log.Info("parsing started")
		Expect(buf.String()).To(Equal("[pdfproparser] INFO: parsing started\n"))
	})

	It("lets a tool override the prefix", func() {
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithPrefix("[parse-english] "),
			logger.WithFlags(0),
		)
		log.Info("done")
		Expect(buf.String()).To(Equal("[parse-english] INFO: done\n"))
	})

	It("suppresses debug output by default", func() {
		log := logger.New(logger.WithOutput(&buf), logger.WithFlags(0))
		log.Debug("hidden")
		Expect(buf.String()).To(BeEmpty())
	})

	It("emits debug output in verbose mode", func() {
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithFlags(0),
			logger.WithVerbose(true),
		)
		log.Debug("page 3 queued for OCR")
		Expect(buf.String()).To(ContainSubstring("DEBUG: page 3 queued for OCR"))
	})

	It("suppresses trace output below trace level", func() {
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithFlags(0),
			logger.WithVerbose(true),
		)
		log.Trace("hidden")
		Expect(buf.String()).To(BeEmpty())
	})

	It("emits debug and trace output at trace level without verbose", func() {
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithFlags(0),
			logger.WithLevel(logger.LevelTrace),
		)
		log.Debug("implied by trace")
		log.Trace("raw engine input")
		Expect(buf.String()).To(ContainSubstring("DEBUG: implied by trace"))
		Expect(buf.String()).To(ContainSubstring("TRACE: raw engine input"))
	})

	It("honors setter toggles after construction", func() {
		log := logger.New(logger.WithOutput(&buf), logger.WithFlags(0))
		log.SetVerbose(true)
		log.SetLevel(logger.LevelTrace)
		log.Debug("now visible")
		log.Trace("also visible")
		Expect(buf.String()).To(ContainSubstring("DEBUG: now visible"))
		Expect(buf.String()).To(ContainSubstring("TRACE: also visible"))
	})
})
