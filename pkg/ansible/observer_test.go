package ansible_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/commissaire-project/bootstrap-agent/pkg/ansible"
)

var _ = Describe("LogForwarder", func() {
	var (
		logs      *observer.ObservedLogs
		forwarder *ansible.LogForwarder
	)

	BeforeEach(func() {
		var core zapcore.Core
		core, logs = observer.New(zap.InfoLevel)
		forwarder = ansible.NewLogForwarder(zap.New(core).Sugar())
	})

	// Given a failed task result
	// When the forwarder handles it
	// Then exactly one warn entry is logged with the failure detail
	It("should log failed results once at warn", func() {
		forwarder.HandleEvent(ansible.Event{
			Host:   "127.0.0.1",
			Task:   "install docker",
			Status: ansible.EventFailed,
			Detail: "error",
		})

		Expect(logs.Len()).To(Equal(1))
		entry := logs.All()[0]
		Expect(entry.Level).To(Equal(zap.WarnLevel))
		Expect(entry.ContextMap()).To(HaveKeyWithValue("detail", "error"))
	})

	It("should log unreachable results once at warn", func() {
		forwarder.HandleEvent(ansible.Event{Host: "127.0.0.1", Status: ansible.EventUnreachable})

		Expect(logs.Len()).To(Equal(1))
		Expect(logs.All()[0].Level).To(Equal(zap.WarnLevel))
	})

	It("should log skipped results once at warn", func() {
		forwarder.HandleEvent(ansible.Event{Host: "127.0.0.1", Status: ansible.EventSkipped})

		Expect(logs.Len()).To(Equal(1))
		Expect(logs.All()[0].Level).To(Equal(zap.WarnLevel))
	})

	It("should log ok results once at info", func() {
		forwarder.HandleEvent(ansible.Event{Host: "127.0.0.1", Status: ansible.EventOK})

		Expect(logs.Len()).To(Equal(1))
		Expect(logs.All()[0].Level).To(Equal(zap.InfoLevel))
	})

	It("should log nothing when no events are delivered", func() {
		Expect(logs.Len()).To(Equal(0))
	})
})
