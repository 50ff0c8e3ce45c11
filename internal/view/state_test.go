package view_test

import (
	"encoding/json"

	"crowdfunder/internal/view"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("State", func() {
	var idle view.State[string]

	BeforeEach(func() {
		idle = view.Idle[string]()
	})

	It("should go from loading to ready", func() {
		loading, err := idle.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(loading.Phase()).To(Equal(view.PhaseLoading))

		ready, err := loading.Loaded("campaigns")
		Expect(err).NotTo(HaveOccurred())
		Expect(ready.Phase()).To(Equal(view.PhaseReady))
		Expect(ready.Data()).To(Equal("campaigns"))
	})

	It("should go from ready to submitting and back", func() {
		loading, _ := idle.Load()
		ready, _ := loading.Loaded("before")

		submitting, err := ready.Submit()
		Expect(err).NotTo(HaveOccurred())
		Expect(submitting.Phase()).To(Equal(view.PhaseSubmitting))
		Expect(submitting.Data()).To(Equal("before"))

		done, err := submitting.Submitted("after")
		Expect(err).NotTo(HaveOccurred())
		Expect(done.Phase()).To(Equal(view.PhaseReady))
		Expect(done.Data()).To(Equal("after"))
	})

	It("should start a form ready to submit", func() {
		form := view.Ready("draft")
		Expect(form.Phase()).To(Equal(view.PhaseReady))

		submitting, err := form.Submit()
		Expect(err).NotTo(HaveOccurred())
		Expect(submitting.Data()).To(Equal("draft"))
	})

	It("should record why a write failed and allow a reload", func() {
		loading, _ := idle.Load()
		ready, _ := loading.Loaded("data")
		submitting, _ := ready.Submit()

		failed, err := submitting.Fail("reverted")
		Expect(err).NotTo(HaveOccurred())
		Expect(failed.Phase()).To(Equal(view.PhaseFailed))
		Expect(failed.Reason()).To(Equal("reverted"))

		reloading, err := failed.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(reloading.Reason()).To(BeEmpty())
	})

	It("should leave the receiver unchanged", func() {
		_, err := idle.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(idle.Phase()).To(Equal(view.PhaseIdle))
	})

	DescribeTable("illegal transitions",
		func(step func(view.State[string]) (view.State[string], error)) {
			next, err := step(idle)
			Expect(err).To(MatchError(view.ErrInvalidTransition))
			Expect(next.Phase()).To(Equal(view.PhaseIdle))
		},
		Entry("loaded without loading", func(s view.State[string]) (view.State[string], error) { return s.Loaded("x") }),
		Entry("submit before ready", func(s view.State[string]) (view.State[string], error) { return s.Submit() }),
		Entry("submitted without submitting", func(s view.State[string]) (view.State[string], error) { return s.Submitted("x") }),
		Entry("fail while idle", func(s view.State[string]) (view.State[string], error) { return s.Fail("x") }),
	)

	It("should not load twice", func() {
		loading, _ := idle.Load()
		_, err := loading.Load()
		Expect(err).To(MatchError(view.ErrInvalidTransition))
	})

	Describe("Must", func() {
		It("should pass a legal transition through", func() {
			loading := view.Must(idle.Load())
			Expect(loading.Phase()).To(Equal(view.PhaseLoading))
		})

		It("should panic on an illegal transition", func() {
			Expect(func() { view.Must(idle.Submit()) }).To(PanicWith(MatchError(view.ErrInvalidTransition)))
		})
	})

	Describe("MarshalJSON", func() {
		It("should include data only when ready", func() {
			loading, _ := idle.Load()
			body, err := json.Marshal(loading)
			Expect(err).NotTo(HaveOccurred())
			Expect(body).To(MatchJSON(`{"state":"loading"}`))

			ready, _ := loading.Loaded("hello")
			body, err = json.Marshal(ready)
			Expect(err).NotTo(HaveOccurred())
			Expect(body).To(MatchJSON(`{"state":"ready","data":"hello"}`))
		})

		It("should include the failure reason", func() {
			loading, _ := idle.Load()
			failed, _ := loading.Fail("node unreachable")
			body, err := json.Marshal(failed)
			Expect(err).NotTo(HaveOccurred())
			Expect(body).To(MatchJSON(`{"state":"failed","error":"node unreachable"}`))
		})
	})
})
