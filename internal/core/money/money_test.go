package money_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/homeledger/homeledger/internal/core/money"
)

var _ = Describe("ParseDecimal", func() {
	It("parses a plain dot-separated amount", func() {
		cents, err := money.ParseDecimal("1234.56")
		Expect(err).ToNot(HaveOccurred())
		Expect(cents).To(Equal(money.Cents(123456)))
	})

	It("parses a comma-separated amount", func() {
		cents, err := money.ParseDecimal("1740,00")
		Expect(err).ToNot(HaveOccurred())
		Expect(cents).To(Equal(money.Cents(174000)))
	})

	It("parses whole numbers", func() {
		cents, err := money.ParseDecimal("42")
		Expect(err).ToNot(HaveOccurred())
		Expect(cents).To(Equal(money.Cents(4200)))
	})

	It("parses amounts with a single fraction digit", func() {
		cents, err := money.ParseDecimal("3.5")
		Expect(err).ToNot(HaveOccurred())
		Expect(cents).To(Equal(money.Cents(350)))
	})

	It("rounds half-up on the third decimal", func() {
		cents, err := money.ParseDecimal("1.005")
		Expect(err).ToNot(HaveOccurred())
		Expect(cents).To(Equal(money.Cents(101)))

		cents, err = money.ParseDecimal("1.004")
		Expect(err).ToNot(HaveOccurred())
		Expect(cents).To(Equal(money.Cents(100)))
	})

	It("rejects negative amounts", func() {
		_, err := money.ParseDecimal("-5.00")
		Expect(err).To(HaveOccurred())
	})

	It("rejects empty and malformed input", func() {
		for _, input := range []string{"", "  ", "abc", "1.2.3", "12a.00"} {
			_, err := money.ParseDecimal(input)
			Expect(err).To(HaveOccurred(), "input %q", input)
		}
	})
})

var _ = Describe("Split", func() {
	It("splits an evenly divisible amount into equal parts", func() {
		parts := money.Split(1200_00, 4)
		Expect(parts).To(Equal([]money.Cents{300_00, 300_00, 300_00, 300_00}))
	})

	It("pushes the residual cents into the last part", func() {
		parts := money.Split(100_00, 3)
		Expect(parts).To(Equal([]money.Cents{33_33, 33_33, 33_34}))
	})

	It("sums exactly to the total for many part counts", func() {
		for n := 1; n <= 1000; n++ {
			parts := money.Split(98765, n)
			Expect(parts).To(HaveLen(n))
			var sum money.Cents
			for _, p := range parts {
				Expect(p).To(BeNumerically(">=", 0))
				sum += p
			}
			Expect(sum).To(Equal(money.Cents(98765)), "n=%d", n)
		}
	})

	It("handles totals smaller than the part count", func() {
		parts := money.Split(51, 100)
		Expect(parts).To(HaveLen(100))
		var sum money.Cents
		for _, p := range parts {
			Expect(p).To(BeNumerically(">=", 0))
			sum += p
		}
		Expect(sum).To(Equal(money.Cents(51)))
	})

	It("returns nil for a non-positive part count", func() {
		Expect(money.Split(100, 0)).To(BeNil())
		Expect(money.Split(100, -3)).To(BeNil())
	})
})

var _ = Describe("Cents formatting", func() {
	It("renders two fraction digits", func() {
		Expect(money.Cents(123456).String()).To(Equal("1234.56"))
		Expect(money.Cents(5).String()).To(Equal("0.05"))
	})

	It("renders negative amounts with a leading sign", func() {
		Expect(money.Cents(-150).String()).To(Equal("-1.50"))
	})
})
