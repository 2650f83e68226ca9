package ansible_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/commissaire-project/bootstrap-agent/internal/models"
	"github.com/commissaire-project/bootstrap-agent/pkg/ansible"
	srvErrors "github.com/commissaire-project/bootstrap-agent/pkg/errors"
)

var _ = Describe("NormalizeFacts", func() {
	var payload models.RawFactPayload

	BeforeEach(func() {
		payload = models.RawFactPayload{
			"ansible_distribution":    "Fedora",
			"ansible_processor_cores": 2,
			"ansible_memory_mb": map[string]any{
				"real": map[string]any{
					"total": 987654321,
				},
			},
			"ansible_mounts": []any{
				map[string]any{"size_total": 123456789},
			},
		}
	})

	// Given a payload carrying all four expected fields
	// When we normalize it
	// Then the os is lowercased and the numbers are copied verbatim
	It("should produce the stable fact schema", func() {
		facts, err := ansible.NormalizeFacts("10.2.0.2", payload)
		Expect(err).NotTo(HaveOccurred())

		Expect(facts).To(Equal(models.Facts{
			OS:     "fedora",
			CPUs:   2,
			Memory: 987654321,
			Space:  123456789,
		}))
	})

	It("should accept float-decoded numbers from a JSON payload", func() {
		payload["ansible_processor_cores"] = float64(8)

		facts, err := ansible.NormalizeFacts("10.2.0.2", payload)
		Expect(err).NotTo(HaveOccurred())
		Expect(facts.CPUs).To(Equal(int64(8)))
	})

	DescribeTable("missing or malformed fields",
		func(mutate func(), field string) {
			mutate()

			_, err := ansible.NormalizeFacts("10.2.0.2", payload)
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsExtractionError(err)).To(BeTrue())

			extractionErr := err.(*srvErrors.ExtractionError)
			Expect(extractionErr.Host).To(Equal("10.2.0.2"))
			Expect(extractionErr.Field).To(Equal(field))
		},
		Entry("distribution missing",
			func() { delete(payload, "ansible_distribution") },
			"ansible_distribution"),
		Entry("distribution has the wrong type",
			func() { payload["ansible_distribution"] = 42 },
			"ansible_distribution"),
		Entry("cores missing",
			func() { delete(payload, "ansible_processor_cores") },
			"ansible_processor_cores"),
		Entry("memory tree missing",
			func() { delete(payload, "ansible_memory_mb") },
			"ansible_memory_mb.real.total"),
		Entry("memory total missing",
			func() { payload["ansible_memory_mb"] = map[string]any{"real": map[string]any{}} },
			"ansible_memory_mb.real.total"),
		Entry("mounts missing",
			func() { delete(payload, "ansible_mounts") },
			"ansible_mounts.0.size_total"),
		Entry("mounts empty",
			func() { payload["ansible_mounts"] = []any{} },
			"ansible_mounts.0.size_total"),
		Entry("mount size missing",
			func() { payload["ansible_mounts"] = []any{map[string]any{}} },
			"ansible_mounts.0.size_total"),
	)
})
