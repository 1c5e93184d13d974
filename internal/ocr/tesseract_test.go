package ocr

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TesseractEngine", func() {
	Context("installation problems", func() {
		It("reports engine-unavailable when the startup probe failed", func() {
			engine := &TesseractEngine{
				availErr: fmt.Errorf("%w: no trained language data installed", ErrEngineUnavailable),
			}

			_, err := engine.Recognize(context.Background(), Input{Languages: []string{"eng"}})
			Expect(err).To(MatchError(ErrEngineUnavailable))
		})

		It("reports engine-unavailable for a language with no trained data", func() {
			engine := &TesseractEngine{available: map[string]bool{"eng": true}}

			_, err := engine.Recognize(context.Background(), Input{Languages: []string{"chi_tra_vert"}})
			Expect(err).To(MatchError(ErrEngineUnavailable))
			Expect(err.Error()).To(ContainSubstring("chi_tra_vert"))
		})

		It("leaves the installed-language check to tesseract when a custom tessdata prefix is set", func() {
			engine := &TesseractEngine{available: map[string]bool{"eng": true}}

			in := Input{Languages: []string{"chi_tra_vert"}, TessdataPrefix: "/opt/tessdata"}
			Expect(engine.checkLanguages(in)).To(Succeed())
		})
	})

	Context("canceled context", func() {
		It("stops before touching the client", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			engine := &TesseractEngine{available: map[string]bool{"eng": true}}
			_, err := engine.Recognize(ctx, Input{Languages: []string{"eng"}})
			Expect(err).To(MatchError(context.Canceled))
		})
	})
})
